package service

import (
	"context"
	"fmt"

	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/repository"
)

var ErrEventNotFound = repository.ErrEventNotFound

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindAll(ctx context.Context, category string) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	SetAttendeeCount(ctx context.Context, id uint, count int) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type EventService struct {
	repo EventRepository
}

func NewEventService(repo EventRepository) *EventService {
	return &EventService{
		repo: repo,
	}
}

// ListEvents returns events ordered by (date, time) ascending. An empty
// category or the "all" sentinel matches every event.
func (s *EventService) ListEvents(ctx context.Context, category string) ([]domain.Event, error) {
	if category == domain.CategoryAll {
		category = ""
	}

	events, err := s.repo.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	// User-created events always start empty regardless of input.
	event.Attendees = 0

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// DeleteEvent removes the event and all of its registrations as one unit.
// Returns ErrEventNotFound when no event row was removed.
func (s *EventService) DeleteEvent(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	if deleted == 0 {
		return ErrEventNotFound
	}

	return nil
}
