package domain

import (
	"context"
	"time"
)

// TimeLayout is the wire and storage format for event start/end timestamps.
// Lexicographic order of strings in this layout matches chronological order,
// which the overlap queries rely on.
const TimeLayout = "2006-01-02T15:04:05"

// DefaultColor is applied when a client omits the display color.
const DefaultColor = "#4285F4"

// Event represents one scheduled activity on the calendar.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Start           string    `json:"start"`
	End             string    `json:"end"`
	BackgroundColor string    `json:"backgroundColor"`
	AllDay          bool      `json:"allDay"`
	Systems         []string  `json:"systems"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EventInput holds the client-settable fields of an Event. Create and update
// both take the full set; update is a full replace, never a patch.
type EventInput struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	BackgroundColor string   `json:"backgroundColor"`
	AllDay          bool     `json:"allDay"`
	Systems         []string `json:"systems"`
}

// Activity is the color-stripped projection of an Event returned by
// time-window queries. It serves activity listings, not calendar rendering.
type Activity struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	AllDay      bool      `json:"allDay"`
	Systems     []string  `json:"systems"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Activity returns the event as its color-stripped projection.
func (e *Event) Activity() *Activity {
	return &Activity{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Start:       e.Start,
		End:         e.End,
		AllDay:      e.AllDay,
		Systems:     e.Systems,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// EventRepository defines the interface for event storage.
// The two overlap methods take window bounds in TimeLayout. Day windows are
// closed on both ends; hour windows use the half-open bounds of the hour
// query. The asymmetry is intentional and must not be unified here.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetAll(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	ListOverlappingDay(ctx context.Context, dayStart, dayEnd string) ([]*Event, error)
	ListOverlappingHour(ctx context.Context, hourStart, hourEnd string) ([]*Event, error)
}

// EventService is the validated CRUD boundary over Event records.
type EventService interface {
	CreateEvent(ctx context.Context, input EventInput) (*Event, error)
	UpdateEvent(ctx context.Context, id string, input EventInput) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
}

// ActivityService answers "what is scheduled during this window".
// hour is optional; nil means the whole day.
type ActivityService interface {
	ListActivities(ctx context.Context, date string, hour *int) ([]*Activity, error)
}
