package domain

import "time"

const (
	// MinTitleLen and MinDescriptionLen are the minimum lengths enforced on
	// every stored event.
	MinTitleLen       = 10
	MinDescriptionLen = 20
)

// ValidateEventInput checks the rules every stored event must satisfy and
// returns the first violated one as a *ValidationError, or nil. Both the
// interactive form and the store call this; it is the single source of truth
// for event validation.
func ValidateEventInput(in EventInput) error {
	if len(in.Title) < MinTitleLen {
		return &ValidationError{Field: "title", Message: "Title must be at least 10 characters"}
	}
	if len(in.Description) < MinDescriptionLen {
		return &ValidationError{Field: "description", Message: "Description must be at least 20 characters"}
	}
	if in.Start == "" || in.End == "" {
		return &ValidationError{Field: "start", Message: "Date and time fields are required"}
	}
	start, err := time.Parse(TimeLayout, in.Start)
	if err != nil {
		return &ValidationError{Field: "start", Message: "Start must be a valid timestamp (YYYY-MM-DDTHH:MM:SS)"}
	}
	end, err := time.Parse(TimeLayout, in.End)
	if err != nil {
		return &ValidationError{Field: "end", Message: "End must be a valid timestamp (YYYY-MM-DDTHH:MM:SS)"}
	}
	if end.Before(start) {
		return &ValidationError{Field: "end", Message: "End must not be earlier than start"}
	}
	return nil
}
