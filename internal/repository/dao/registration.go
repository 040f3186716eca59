package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Registration struct {
	ID uint `gorm:"primaryKey"`

	EventID uint  `gorm:"not null;index"`
	Event   Event `gorm:"foreignKey:EventID"`

	FirstName        string `gorm:"not null"`
	LastName         string `gorm:"not null"`
	Email            string `gorm:"not null"`
	Phone            string `gorm:"not null"`
	Tickets          int    `gorm:"not null"`
	Comments         string
	ConfirmationCode string    `gorm:"not null"`
	RegistrationDate time.Time `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

func (d *RegistrationDAO) Insert(ctx context.Context, reg Registration) (Registration, error) {
	result := d.db.WithContext(ctx).Create(&reg)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.ForeignKeyViolation {
			return Registration{}, ErrEventNotFound
		}

		return Registration{}, result.Error
	}

	return reg, nil
}

func (d *RegistrationDAO) FindByEventID(ctx context.Context, eventID uint) ([]Registration, error) {
	var regs []Registration
	err := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Find(&regs).Error
	if err != nil {
		return nil, err
	}

	return regs, nil
}

// SumTicketsByEventID returns the authoritative confirmed ticket count for
// an event. No rows is 0, not an error.
func (d *RegistrationDAO) SumTicketsByEventID(ctx context.Context, eventID uint) (int, error) {
	var total int
	err := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("event_id = ?", eventID).
		Select("COALESCE(SUM(tickets), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}

	return total, nil
}
