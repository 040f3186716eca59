package repository

import (
	"context"
	"fmt"

	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/repository/dao"
)

type RegistrationDAO interface {
	Insert(ctx context.Context, reg dao.Registration) (dao.Registration, error)
	FindByEventID(ctx context.Context, eventID uint) ([]dao.Registration, error)
	SumTicketsByEventID(ctx context.Context, eventID uint) (int, error)
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{
		dao: dao,
	}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(reg))
	if err != nil {
		return domain.Registration{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *RegistrationRepository) FindByEventID(ctx context.Context, eventID uint) ([]domain.Registration, error) {
	found, err := r.dao.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEventID -> %w", err)
	}

	regs := make([]domain.Registration, len(found))
	for i, reg := range found {
		regs[i] = r.daoToDomain(reg)
	}

	return regs, nil
}

func (r *RegistrationRepository) SumTicketsByEventID(ctx context.Context, eventID uint) (int, error) {
	total, err := r.dao.SumTicketsByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.SumTicketsByEventID -> %w", err)
	}

	return total, nil
}

func (r *RegistrationRepository) domainToDao(reg domain.Registration) dao.Registration {
	return dao.Registration{
		ID:               reg.ID,
		EventID:          reg.EventID,
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Tickets:          reg.Tickets,
		Comments:         reg.Comments,
		ConfirmationCode: reg.ConfirmationCode,
		RegistrationDate: reg.RegistrationDate,
	}
}

func (r *RegistrationRepository) daoToDomain(reg dao.Registration) domain.Registration {
	return domain.Registration{
		ID:               reg.ID,
		EventID:          reg.EventID,
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Tickets:          reg.Tickets,
		Comments:         reg.Comments,
		ConfirmationCode: reg.ConfirmationCode,
		RegistrationDate: reg.RegistrationDate,
	}
}
