package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/events-api/internal/domain"
)

type recordingEventRepo struct {
	*fakeEventRepo

	lastCategory string
}

func (r *recordingEventRepo) FindAll(ctx context.Context, category string) ([]domain.Event, error) {
	r.lastCategory = category

	return r.fakeEventRepo.FindAll(ctx, category)
}

func TestListEvents_CategoryFilter(t *testing.T) {
	tests := []struct {
		name         string
		category     string
		wantCategory string
		wantCount    int
	}{
		{
			name:      "no filter returns everything",
			category:  "",
			wantCount: 3,
		},
		{
			name:         "the all sentinel behaves as no filter",
			category:     "all",
			wantCategory: "",
			wantCount:    3,
		},
		{
			name:         "category filter matches exactly",
			category:     "tech",
			wantCategory: "tech",
			wantCount:    2,
		},
		{
			name:         "unknown category matches nothing",
			category:     "opera",
			wantCategory: "opera",
			wantCount:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingEventRepo{fakeEventRepo: newFakeEventRepo(
				domain.Event{ID: 1, Category: "tech"},
				domain.Event{ID: 2, Category: "tech"},
				domain.Event{ID: 3, Category: "food"},
			)}
			svc := NewEventService(repo)

			events, err := svc.ListEvents(context.Background(), tt.category)

			require.NoError(t, err)
			assert.Len(t, events, tt.wantCount)
			assert.Equal(t, tt.wantCategory, repo.lastCategory)
		})
	}
}

func TestGetEvent_NotFound(t *testing.T) {
	svc := NewEventService(newFakeEventRepo())

	_, err := svc.GetEvent(context.Background(), 42)

	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestCreateEvent_AlwaysStartsEmpty(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, err := svc.CreateEvent(context.Background(), domain.Event{
		Title:     "Go Meetup",
		Capacity:  50,
		Attendees: 17, // must be ignored
	})

	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Attendees)
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeEventRepo(domain.Event{ID: 1, Capacity: 10})
	svc := NewEventService(repo)

	require.NoError(t, svc.DeleteEvent(context.Background(), 1))

	_, err := svc.GetEvent(context.Background(), 1)
	require.ErrorIs(t, err, ErrEventNotFound)

	// Deleting a missing event reports not-found, not success.
	require.ErrorIs(t, svc.DeleteEvent(context.Background(), 1), ErrEventNotFound)
}
