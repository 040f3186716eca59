package v1

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gatherly/events-api/internal/api/handler/v1/response"
	"github.com/gatherly/events-api/internal/service"
)

// HandleExportRegistrations godoc
// @Summary      Export registrations as CSV
// @Description  Streams the event's registrations as a CSV attachment. Organizers only.
// @Tags         registrations
// @Produce      text/csv
// @Param        eventID  path  int  true  "Event ID"
// @Success      200
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/registrations/export [get]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleExportRegistrations(ctx *gin.Context) {
	if _, respErr := requireOrganizer(ctx, h.uSvc); respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	eventID, err := strconv.ParseUint(ctx.Param("eventID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid event ID: %w", err)))
		return
	}

	event, err := h.eventSvc.GetEvent(ctx.Request.Context(), uint(eventID))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleExportRegistrations -> h.eventSvc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	regs, err := h.svc.ListRegistrations(ctx.Request.Context(), uint(eventID))
	if err != nil {
		err = fmt.Errorf("v1.HandleExportRegistrations -> h.svc.ListRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	filename := fmt.Sprintf("registrations-event-%d.csv", event.ID)
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Status(http.StatusOK)

	w := csv.NewWriter(ctx.Writer)
	_ = w.Write([]string{
		"id", "first_name", "last_name", "email", "phone",
		"tickets", "comments", "confirmation_code", "registration_date",
	})
	for _, reg := range regs {
		_ = w.Write([]string{
			strconv.FormatUint(uint64(reg.ID), 10),
			reg.FirstName,
			reg.LastName,
			reg.Email,
			reg.Phone,
			strconv.Itoa(reg.Tickets),
			reg.Comments,
			reg.ConfirmationCode,
			reg.RegistrationDate.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()
}
