package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"sdlccalendar/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns the validated CRUD boundary over event records.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.ValidateEventInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &domain.Event{
		Title:           input.Title,
		Description:     input.Description,
		Start:           input.Start,
		End:             input.End,
		BackgroundColor: input.BackgroundColor,
		AllDay:          input.AllDay,
		Systems:         normalizeSystems(input.Systems),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if event.BackgroundColor == "" {
		event.BackgroundColor = domain.DefaultColor
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.ValidateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:              id,
		Title:           input.Title,
		Description:     input.Description,
		Start:           input.Start,
		End:             input.End,
		BackgroundColor: input.BackgroundColor,
		AllDay:          input.AllDay,
		Systems:         normalizeSystems(input.Systems),
		UpdatedAt:       time.Now(),
	}
	if event.BackgroundColor == "" {
		event.BackgroundColor = domain.DefaultColor
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// normalizeSystems trims system tags and drops empties and duplicates.
// Insertion order of the remaining tags is kept, it just carries no meaning.
func normalizeSystems(systems []string) []string {
	seen := make(map[string]struct{}, len(systems))
	out := make([]string, 0, len(systems))
	for _, s := range systems {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
