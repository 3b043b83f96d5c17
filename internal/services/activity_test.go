package services

import (
	"context"
	"testing"
	"time"

	"sdlccalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func seedEvent(t *testing.T, repo *fakeEventRepo, start, end string) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Title:           "Deploy CRM hotfix",
		Description:     "Rolling out the CRM hotfix to all production nodes",
		Start:           start,
		End:             end,
		BackgroundColor: domain.DefaultColor,
		Systems:         []string{"CRM"},
	}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func TestActivityService_DayWindow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	seedEvent(t, repo, "2024-11-15T08:00:00", "2024-11-15T10:00:00")

	activities, err := svc.ListActivities(ctx, "2024-11-15", nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, []string{"2024-11-15T00:00:00", "2024-11-15T23:59:59"}, repo.lastDayWindow)

	// The same event does not show up on the following day.
	activities, err = svc.ListActivities(ctx, "2024-11-16", nil)
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestActivityService_HourWindow(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	// Ends within the 09:00-10:00 slot.
	seedEvent(t, repo, "2024-11-15T08:30:00", "2024-11-15T09:30:00")

	activities, err := svc.ListActivities(ctx, "2024-11-15", intPtr(9))
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, []string{"2024-11-15T09:00:00", "2024-11-15T10:00:00"}, repo.lastHourWindow)
}

func TestActivityService_HourWindowNoMatch(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	// Entirely before the 09:00-10:00 slot.
	seedEvent(t, repo, "2024-11-15T08:00:00", "2024-11-15T08:30:00")

	activities, err := svc.ListActivities(ctx, "2024-11-15", intPtr(9))
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestActivityService_SpansAcrossHour(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	// Full-day event fully contains the 14:00-15:00 slot.
	seedEvent(t, repo, "2024-11-15T00:00:00", "2024-11-16T00:00:00")

	activities, err := svc.ListActivities(ctx, "2024-11-15", intPtr(14))
	require.NoError(t, err)
	require.Len(t, activities, 1)
}

func TestActivityService_Hour23RollsIntoNextDay(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	_, err := svc.ListActivities(ctx, "2024-11-15", intPtr(23))
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-11-15T23:00:00", "2024-11-16T00:00:00"}, repo.lastHourWindow)
}

func TestActivityService_StripsColor(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	event := seedEvent(t, repo, "2024-11-15T08:00:00", "2024-11-15T10:00:00")

	activities, err := svc.ListActivities(ctx, "2024-11-15", nil)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	got := activities[0]
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.Title, got.Title)
	assert.Equal(t, event.Systems, got.Systems)
	// Activity has no color field at all; nothing further to assert here
	// beyond the type itself.
}

func TestActivityService_BadInput(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	_, err := svc.ListActivities(ctx, "15/11/2024", nil)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.ListActivities(ctx, "2024-11-15", intPtr(24))
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.ListActivities(ctx, "2024-11-15", intPtr(-1))
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
}

func TestActivityService_EmptyResultIsNotAnError(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	svc := NewActivityService(repo, time.Second)

	activities, err := svc.ListActivities(ctx, "2024-11-15", nil)
	require.NoError(t, err)
	require.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestActivityService_StoreFailurePropagates(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEventRepo()
	repo.err = context.DeadlineExceeded
	svc := NewActivityService(repo, time.Second)

	_, err := svc.ListActivities(ctx, "2024-11-15", nil)
	require.Error(t, err)
	assert.False(t, domain.IsValidationError(err))
}
