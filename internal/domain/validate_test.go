package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() EventInput {
	return EventInput{
		Title:       "Deploy CRM hotfix",
		Description: "Rolling out the CRM hotfix to all production nodes",
		Start:       "2024-11-15T08:00:00",
		End:         "2024-11-15T10:00:00",
	}
}

func TestValidateEventInput(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*EventInput)
		wantField string
	}{
		{
			name:   "valid",
			mutate: func(in *EventInput) {},
		},
		{
			name:      "title too short",
			mutate:    func(in *EventInput) { in.Title = "Too short" },
			wantField: "title",
		},
		{
			name:      "description too short",
			mutate:    func(in *EventInput) { in.Description = "short desc" },
			wantField: "description",
		},
		{
			name:      "missing start",
			mutate:    func(in *EventInput) { in.Start = "" },
			wantField: "start",
		},
		{
			name:      "missing end",
			mutate:    func(in *EventInput) { in.End = "" },
			wantField: "start",
		},
		{
			name:      "unparseable start",
			mutate:    func(in *EventInput) { in.Start = "15/11/2024 08:00" },
			wantField: "start",
		},
		{
			name:      "unparseable end",
			mutate:    func(in *EventInput) { in.End = "not-a-timestamp" },
			wantField: "end",
		},
		{
			name:      "end before start",
			mutate:    func(in *EventInput) { in.End = "2024-11-15T07:59:59" },
			wantField: "end",
		},
		{
			name: "title checked before description",
			mutate: func(in *EventInput) {
				in.Title = "short"
				in.Description = "also short"
			},
			wantField: "title",
		},
		{
			name: "description checked before dates",
			mutate: func(in *EventInput) {
				in.Description = "short"
				in.Start = ""
			},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := ValidateEventInput(in)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestValidateEventInput_EndEqualStartIsAllowed(t *testing.T) {
	in := validInput()
	in.End = in.Start
	require.NoError(t, ValidateEventInput(in))
}
