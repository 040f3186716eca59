package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/events-api/internal/domain"
)

// CapacityError rejects a registration that would push the event's confirmed
// ticket count past its capacity. Remaining carries the number of tickets
// still available so callers can display "only N left".
type CapacityError struct {
	EventID   uint
	Requested int
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("event %d has only %d tickets left (requested %d)", e.EventID, e.Remaining, e.Requested)
}

type RegistrationRepository interface {
	Create(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	FindByEventID(ctx context.Context, eventID uint) ([]domain.Registration, error)
	SumTicketsByEventID(ctx context.Context, eventID uint) (int, error)
}

type RegistrationService struct {
	repo      RegistrationRepository
	eventRepo EventRepository
}

func NewRegistrationService(repo RegistrationRepository, eventRepo EventRepository) *RegistrationService {
	return &RegistrationService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *RegistrationService) ListRegistrations(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	regs, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEventID -> %w", err)
	}

	return regs, nil
}

// ConfirmedTicketCount sums tickets over an event's registration rows. This
// is the authoritative count; the event's cached attendees field is display
// only. An event with no registrations counts 0.
func (s *RegistrationService) ConfirmedTicketCount(ctx context.Context, eventID uint) (int, error) {
	total, err := s.repo.SumTicketsByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("s.repo.SumTicketsByEventID -> %w", err)
	}

	return total, nil
}

// Register validates the request against live capacity, persists the
// registration and refreshes the event's attendee counter. Returns the
// created registration together with the updated event view.
//
// The count-check-insert sequence is not serialized per event: two
// concurrent registrations can both read the same count and overbook.
// Single-writer deployments never hit this; see DESIGN.md.
func (s *RegistrationService) Register(ctx context.Context, reg domain.Registration) (domain.Registration, domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, reg.EventID)
	if err != nil {
		return domain.Registration{}, domain.Event{}, fmt.Errorf("s.eventRepo.FindByID -> %w", err)
	}

	current, err := s.repo.SumTicketsByEventID(ctx, reg.EventID)
	if err != nil {
		return domain.Registration{}, domain.Event{}, fmt.Errorf("s.repo.SumTicketsByEventID -> %w", err)
	}

	if !event.HasCapacityFor(current, reg.Tickets) {
		return domain.Registration{}, domain.Event{}, &CapacityError{
			EventID:   event.ID,
			Requested: reg.Tickets,
			Remaining: event.Remaining(current),
		}
	}

	reg.ConfirmationCode = uuid.NewString()
	reg.RegistrationDate = time.Now()

	created, err := s.repo.Create(ctx, reg)
	if err != nil {
		return domain.Registration{}, domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	newTotal := current + reg.Tickets
	if err = s.eventRepo.SetAttendeeCount(ctx, event.ID, newTotal); err != nil {
		return domain.Registration{}, domain.Event{}, fmt.Errorf("s.eventRepo.SetAttendeeCount -> %w", err)
	}
	event.Attendees = newTotal

	return created, event, nil
}
