package dao

import (
	"time"

	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Event{},
		&Registration{},
	)
}

// SeedEvents inserts demo data on first boot. The "Go Meetup" event ships
// with two registrations and its attendee counter pre-set to their ticket
// sum, so the demo data satisfies the same invariant live registrations do.
func SeedEvents(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Event{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		events := []Event{
			{
				Title:       "Go Meetup",
				Description: "Monthly meetup for Go developers. Talks, pizza and lightning rounds.",
				Date:        "2026-09-18",
				Time:        "18:30",
				Location:    "Community Hall, Main St 12",
				Category:    "tech",
				Capacity:    50,
				Image:       "https://images.gatherly.dev/demo/go-meetup.jpg",
				Price:       0,
			},
			{
				Title:       "Autumn Food Festival",
				Description: "Local producers, street food and cooking workshops.",
				Date:        "2026-10-03",
				Time:        "11:00",
				Location:    "Riverside Park",
				Category:    "food",
				Capacity:    400,
				Image:       "https://images.gatherly.dev/demo/food-festival.jpg",
				Price:       5,
			},
			{
				Title:       "Open Air Cinema Night",
				Description: "Classic movies under the stars. Bring a blanket.",
				Date:        "2026-09-25",
				Time:        "20:00",
				Location:    "Old Town Square",
				Category:    "culture",
				Capacity:    120,
				Image:       "https://images.gatherly.dev/demo/cinema-night.jpg",
				Price:       8.50,
			},
		}
		if err := tx.Create(&events).Error; err != nil {
			return err
		}

		regs := []Registration{
			{
				EventID:          events[0].ID,
				FirstName:        "Ada",
				LastName:         "Lovelace",
				Email:            "ada@example.com",
				Phone:            "+15550100",
				Tickets:          2,
				Comments:         "vegetarian pizza please",
				ConfirmationCode: "f3b9c8a2-demo-seed-0001",
				RegistrationDate: time.Now(),
			},
			{
				EventID:          events[0].ID,
				FirstName:        "Grace",
				LastName:         "Hopper",
				Email:            "grace@example.com",
				Phone:            "+15550101",
				Tickets:          1,
				ConfirmationCode: "f3b9c8a2-demo-seed-0002",
				RegistrationDate: time.Now(),
			},
		}
		if err := tx.Create(&regs).Error; err != nil {
			return err
		}

		return tx.Model(&Event{}).
			Where("id = ?", events[0].ID).
			Update("attendees", 3).Error
	})
}
