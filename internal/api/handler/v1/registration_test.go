package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/service"
)

type fakeRegistrationService struct {
	regs          []domain.Registration
	registerErr   error
	registerCalls int
}

func (f *fakeRegistrationService) ListRegistrations(_ context.Context, eventID uint) ([]domain.Registration, error) {
	var regs []domain.Registration
	for _, r := range f.regs {
		if r.EventID == eventID {
			regs = append(regs, r)
		}
	}

	return regs, nil
}

func (f *fakeRegistrationService) Register(_ context.Context, reg domain.Registration) (domain.Registration, domain.Event, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return domain.Registration{}, domain.Event{}, f.registerErr
	}

	reg.ID = 1
	reg.ConfirmationCode = "b2f9c1de"
	reg.RegistrationDate = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	event := domain.Event{ID: reg.EventID, Title: "Go Meetup", Capacity: 50, Attendees: reg.Tickets}

	return reg, event, nil
}

func newRegistrationRouter(svc *fakeRegistrationService, eventSvc *fakeEventService, uSvc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRegistrationHandler(svc, eventSvc, uSvc)

	router.POST("/events/:eventID/registrations", h.HandleCreateRegistration)
	router.GET("/events/:eventID/registrations", asLoggedIn(1), h.HandleListRegistrations)
	router.GET("/events/:eventID/registrations/export", asLoggedIn(1), h.HandleExportRegistrations)

	return router
}

func TestHandleCreateRegistration(t *testing.T) {
	validBody := `{
		"first_name": "Jane",
		"last_name": "Doe",
		"email": "jane@example.com",
		"phone": "+15550199",
		"tickets": 2
	}`

	t.Run("registers and returns the updated event", func(t *testing.T) {
		svc := &fakeRegistrationService{}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/1/registrations", validBody)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Registration domain.Registration `json:"registration"`
			Event        domain.Event        `json:"event"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(1), resp.Registration.ID)
		assert.NotEmpty(t, resp.Registration.ConfirmationCode)
		assert.Equal(t, 2, resp.Event.Attendees)
	})

	t.Run("incomplete input never reaches the service", func(t *testing.T) {
		body := `{"first_name": "Jane", "tickets": 2}`
		svc := &fakeRegistrationService{}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/1/registrations", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.registerCalls)
	})

	t.Run("zero tickets is rejected", func(t *testing.T) {
		body := `{
			"first_name": "Jane",
			"last_name": "Doe",
			"email": "jane@example.com",
			"phone": "+15550199",
			"tickets": 0
		}`
		svc := &fakeRegistrationService{}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/1/registrations", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.registerCalls)
	})

	t.Run("missing event is a 404", func(t *testing.T) {
		svc := &fakeRegistrationService{registerErr: service.ErrEventNotFound}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/42/registrations", validBody)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("capacity exhaustion reports the remaining tickets", func(t *testing.T) {
		svc := &fakeRegistrationService{
			registerErr: &service.CapacityError{EventID: 1, Requested: 2, Remaining: 1},
		}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/1/registrations", validBody)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error   string         `json:"error"`
			Details map[string]int `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Details["remaining"])
		assert.Equal(t, 2, resp.Details["requested"])
	})

	t.Run("bad event id is a 400", func(t *testing.T) {
		svc := &fakeRegistrationService{}
		router := newRegistrationRouter(svc, &fakeEventService{}, &fakeUserService{})

		w := performRequest(router, http.MethodPost, "/events/abc/registrations", validBody)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.registerCalls)
	})
}

func TestHandleListRegistrations(t *testing.T) {
	t.Run("organizer sees the event's registrations", func(t *testing.T) {
		svc := &fakeRegistrationService{regs: []domain.Registration{
			{ID: 1, EventID: 1, FirstName: "Jane", Tickets: 2},
			{ID: 2, EventID: 2, FirstName: "John", Tickets: 1},
		}}
		uSvc := &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}}
		router := newRegistrationRouter(svc, &fakeEventService{}, uSvc)

		w := performRequest(router, http.MethodGet, "/events/1/registrations", "")

		require.Equal(t, http.StatusOK, w.Code)

		var regs []domain.Registration
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &regs))
		require.Len(t, regs, 1)
		assert.Equal(t, "Jane", regs[0].FirstName)
	})

	t.Run("attendee is rejected", func(t *testing.T) {
		uSvc := &fakeUserService{user: domain.User{ID: 2, Role: domain.RoleAttendee}}
		router := newRegistrationRouter(&fakeRegistrationService{}, &fakeEventService{}, uSvc)

		w := performRequest(router, http.MethodGet, "/events/1/registrations", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandleExportRegistrations(t *testing.T) {
	t.Run("streams a CSV attachment", func(t *testing.T) {
		svc := &fakeRegistrationService{regs: []domain.Registration{
			{
				ID:               1,
				EventID:          1,
				FirstName:        "Jane",
				LastName:         "Doe",
				Email:            "jane@example.com",
				Phone:            "+15550199",
				Tickets:          2,
				ConfirmationCode: "b2f9c1de",
				RegistrationDate: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
			},
		}}
		eventSvc := &fakeEventService{getEvent: domain.Event{ID: 1, Title: "Go Meetup"}}
		uSvc := &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}}
		router := newRegistrationRouter(svc, eventSvc, uSvc)

		w := performRequest(router, http.MethodGet, "/events/1/registrations/export", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="registrations-event-1.csv"`, w.Header().Get("Content-Disposition"))

		body := w.Body.String()
		assert.Contains(t, body, "id,first_name,last_name,email,phone,tickets,comments,confirmation_code,registration_date")
		assert.Contains(t, body, "1,Jane,Doe,jane@example.com,+15550199,2,,b2f9c1de,2026-08-28 12:00:00")
	})

	t.Run("missing event is a 404", func(t *testing.T) {
		eventSvc := &fakeEventService{getErr: service.ErrEventNotFound}
		uSvc := &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}}
		router := newRegistrationRouter(&fakeRegistrationService{}, eventSvc, uSvc)

		w := performRequest(router, http.MethodGet, "/events/42/registrations/export", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
