package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/repository/dao"
)

var ErrEventNotFound = dao.ErrEventNotFound

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindAll(ctx context.Context, category string) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	UpdateAttendees(ctx context.Context, id uint, count int) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(event))
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindAll(ctx context.Context, category string) ([]domain.Event, error) {
	found, err := r.dao.FindAll(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) SetAttendeeCount(ctx context.Context, id uint, count int) error {
	if err := r.dao.UpdateAttendees(ctx, id, count); err != nil {
		return fmt.Errorf("r.dao.UpdateAttendees -> %w", err)
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uint) (int64, error) {
	deleted, err := r.dao.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return deleted, nil
}

func (r *EventRepository) domainToDao(e domain.Event) dao.Event {
	return dao.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Capacity:    e.Capacity,
		Attendees:   e.Attendees,
		Image:       e.Image,
		Price:       e.Price,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Capacity:    e.Capacity,
		Attendees:   e.Attendees,
		Image:       e.Image,
		Price:       e.Price,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
