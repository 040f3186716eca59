package domain

import "time"

type Registration struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Tickets          int       `json:"tickets"`
	Comments         string    `json:"comments"`
	ConfirmationCode string    `json:"confirmation_code"`
	RegistrationDate time.Time `json:"registration_date"`
}
