package response

import "github.com/gatherly/events-api/internal/domain"

// RegistrationResponse returns the created registration together with the
// updated event view (refreshed attendee counter included).
type RegistrationResponse struct {
	Registration domain.Registration `json:"registration"`
	Event        domain.Event        `json:"event"`
}
