package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Event struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Date        string `gorm:"not null;index:idx_events_date_time,priority:1"` // "2006-01-02"
	Time        string `gorm:"not null;index:idx_events_date_time,priority:2"` // "15:04"
	Location    string `gorm:"not null"`
	Category    string `gorm:"not null;index"`
	Capacity    int    `gorm:"not null"`
	Attendees   int    `gorm:"not null;default:0"`
	Image       string
	Price       float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

// FindAll returns events ordered by (date, time) ascending. Both columns hold
// ISO-formatted text so lexical order is chronological order. An empty
// category matches everything.
func (d *EventDAO) FindAll(ctx context.Context, category string) ([]Event, error) {
	query := d.db.WithContext(ctx).Order("date ASC, time ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var events []Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event
	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

// UpdateAttendees overwrites the denormalized attendee counter. The caller
// computes the value; no capacity validation happens here.
func (d *EventDAO) UpdateAttendees(ctx context.Context, id uint, count int) error {
	result := d.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ?", id).
		Update("attendees", count)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete removes the event's registrations and then the event itself inside
// one transaction, so a failure in either step leaves no partial state.
// Returns the number of events removed (0 or 1).
func (d *EventDAO) Delete(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&Registration{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
