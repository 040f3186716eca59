package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/events-api/internal/api/handler/v1/request"
	"github.com/gatherly/events-api/internal/api/handler/v1/response"
	"github.com/gatherly/events-api/internal/domain"
	"github.com/gatherly/events-api/internal/service"
)

type RegistrationService interface {
	ListRegistrations(ctx context.Context, eventID uint) ([]domain.Registration, error)
	Register(ctx context.Context, reg domain.Registration) (domain.Registration, domain.Event, error)
}

type RegistrationHandler struct {
	svc      RegistrationService
	eventSvc EventService
	uSvc     UserService
}

func NewRegistrationHandler(svc RegistrationService, eventSvc EventService, uSvc UserService) *RegistrationHandler {
	return &RegistrationHandler{
		svc:      svc,
		eventSvc: eventSvc,
		uSvc:     uSvc,
	}
}

// HandleListRegistrations godoc
// @Summary      List registrations for an event
// @Tags         registrations
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200  {array}   domain.Registration
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/registrations [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleListRegistrations(ctx *gin.Context) {
	if _, respErr := requireOrganizer(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	regs, err := h.svc.ListRegistrations(ctx.Request.Context(), uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleListRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

// HandleCreateRegistration godoc
// @Summary      Register for an event
// @Description  Registers an attendee for N tickets if the event still has capacity. A request for exactly the remaining capacity succeeds; anything beyond fails with the remaining count.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                true  "Event ID"
// @Param        input    body      request.CreateRegistrationRequest  true  "Registration details"
// @Success      201  {object}  response.RegistrationResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/registrations [post]
func (h *RegistrationHandler) HandleCreateRegistration(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	var input request.CreateRegistrationRequest
	if err = ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err = input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reg := domain.Registration{
		EventID:   uint(eventID),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Tickets:   input.Tickets,
		Comments:  input.Comments,
	}

	created, event, err := h.svc.Register(ctx.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		var capErr *service.CapacityError
		if errors.As(err, &capErr) {
			response.RenderErr(ctx, response.ErrCapacityExceeded(capErr.Remaining, capErr.Requested))
			return
		}

		err = fmt.Errorf("v1.HandleCreateRegistration -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.RegistrationResponse{
		Registration: created,
		Event:        event,
	})
}
