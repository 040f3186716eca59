package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/events-api/internal/api/middleware"
	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/service"
)

type fakeEventService struct {
	events []domain.Event

	listCategory string
	createCalls  int
	deleteErr    error
	getEvent     domain.Event
	getErr       error
}

func (f *fakeEventService) ListEvents(_ context.Context, category string) ([]domain.Event, error) {
	f.listCategory = category

	return f.events, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, _ uint) (domain.Event, error) {
	if f.getErr != nil {
		return domain.Event{}, f.getErr
	}

	return f.getEvent, nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, event domain.Event) (domain.Event, error) {
	f.createCalls++
	event.ID = 1

	return event, nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, _ uint) error {
	return f.deleteErr
}

type fakeUserService struct {
	user domain.User
	err  error
}

func (f *fakeUserService) GetUser(_ context.Context, _ uint) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}

	return f.user, nil
}

func asLoggedIn(userID uint) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(middleware.CtxKeyUserID, userID)
		ctx.Next()
	}
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func newEventRouter(svc *fakeEventService, uSvc *fakeUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewEventHandler(svc, uSvc)

	router.GET("/events", h.HandleListEvents)
	router.GET("/events/:eventID", h.HandleGetEvent)
	router.POST("/events", asLoggedIn(1), h.HandleCreateEvent)
	router.DELETE("/events/:eventID", asLoggedIn(1), h.HandleDeleteEvent)

	return router
}

func TestHandleListEvents(t *testing.T) {
	svc := &fakeEventService{events: []domain.Event{{ID: 1, Title: "Go Meetup"}}}
	router := newEventRouter(svc, &fakeUserService{})

	w := performRequest(router, http.MethodGet, "/events?category=tech", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tech", svc.listCategory)

	var events []domain.Event
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "Go Meetup", events[0].Title)
}

func TestHandleGetEvent(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		getErr   error
		wantCode int
	}{
		{
			name:     "found",
			path:     "/events/1",
			wantCode: http.StatusOK,
		},
		{
			name:     "not found",
			path:     "/events/42",
			getErr:   service.ErrEventNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "bad id",
			path:     "/events/abc",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{getEvent: domain.Event{ID: 1}, getErr: tt.getErr}
			router := newEventRouter(svc, &fakeUserService{})

			w := performRequest(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandleCreateEvent(t *testing.T) {
	validBody := `{
		"title": "Go Meetup",
		"description": "Monthly meetup",
		"date": "2026-09-18",
		"time": "18:30",
		"location": "Community Hall",
		"category": "tech",
		"capacity": 50
	}`

	t.Run("creates with defaults applied", func(t *testing.T) {
		svc := &fakeEventService{}
		router := newEventRouter(svc, &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}})

		w := performRequest(router, http.MethodPost, "/events", validBody)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, svc.createCalls)

		var created domain.Event
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.Equal(t, DefaultEventImage, created.Image)
		assert.Zero(t, created.Price)
	})

	t.Run("missing capacity never reaches the service", func(t *testing.T) {
		body := `{
			"title": "Go Meetup",
			"description": "Monthly meetup",
			"date": "2026-09-18",
			"time": "18:30",
			"location": "Community Hall",
			"category": "tech"
		}`
		svc := &fakeEventService{}
		router := newEventRouter(svc, &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}})

		w := performRequest(router, http.MethodPost, "/events", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, svc.createCalls)
		assert.Contains(t, w.Body.String(), "capacity")
	})

	t.Run("non-organizer is rejected", func(t *testing.T) {
		svc := &fakeEventService{}
		router := newEventRouter(svc, &fakeUserService{user: domain.User{ID: 2, Role: domain.RoleAttendee}})

		w := performRequest(router, http.MethodPost, "/events", validBody)

		require.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 0, svc.createCalls)
	})
}

func TestHandleDeleteEvent(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		svc := &fakeEventService{}
		router := newEventRouter(svc, &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}})

		w := performRequest(router, http.MethodDelete, "/events/1", "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"deleted":1`)
	})

	t.Run("missing event is a 404", func(t *testing.T) {
		svc := &fakeEventService{deleteErr: service.ErrEventNotFound}
		router := newEventRouter(svc, &fakeUserService{user: domain.User{ID: 1, Role: domain.RoleOrganizer}})

		w := performRequest(router, http.MethodDelete, "/events/42", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
