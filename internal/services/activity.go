package services

import (
	"context"
	"fmt"
	"time"

	"sdlccalendar/internal/domain"
)

// dateLayout is the calendar-date format accepted by activity queries.
const dateLayout = "2006-01-02"

type activityService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewActivityService returns the time-window query boundary. It shares the
// event repository with the CRUD service; only the result shape differs.
func NewActivityService(eventRepo domain.EventRepository, timeout time.Duration) domain.ActivityService {
	return &activityService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// ListActivities returns the color-stripped events overlapping the requested
// window. With hour nil the window is the closed day [00:00:00, 23:59:59];
// with hour set it is the half-open slot [hour:00:00, hour+1:00:00), rolling
// into the next day for hour 23.
func (s *activityService) ListActivities(ctx context.Context, date string, hour *int) ([]*domain.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, &domain.ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
	}

	var events []*domain.Event
	if hour == nil {
		dayStart := day.Format(domain.TimeLayout)
		dayEnd := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second).Format(domain.TimeLayout)
		events, err = s.eventRepo.ListOverlappingDay(ctx, dayStart, dayEnd)
	} else {
		if *hour < 0 || *hour > 23 {
			return nil, &domain.ValidationError{Field: "hour", Message: "Hour must be between 0 and 23"}
		}
		slotStart := day.Add(time.Duration(*hour) * time.Hour)
		hourStart := slotStart.Format(domain.TimeLayout)
		hourEnd := slotStart.Add(time.Hour).Format(domain.TimeLayout)
		events, err = s.eventRepo.ListOverlappingHour(ctx, hourStart, hourEnd)
	}
	if err != nil {
		return nil, fmt.Errorf("query window: %w", err)
	}

	activities := make([]*domain.Activity, 0, len(events))
	for _, e := range events {
		activities = append(activities, e.Activity())
	}
	return activities, nil
}
