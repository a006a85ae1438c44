package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	lock         *ucSchedule.ScheduleLock
	availability *ucSchedule.SlotAvailability
	agenda       *ucSchedule.AgendaQuery
}

func NewScheduleHandler(
	lock *ucSchedule.ScheduleLock,
	availability *ucSchedule.SlotAvailability,
	agenda *ucSchedule.AgendaQuery,
) *ScheduleHandler {
	return &ScheduleHandler{
		lock:         lock,
		availability: availability,
		agenda:       agenda,
	}
}

type LockRequest struct {
	Date string `json:"date" binding:"required"`
}

type lockChange func(
	ctx context.Context,
	requester *models.Actor,
	professionalID uint,
	date string,
) (models.LockState, error)

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ScheduleHandler) Availability(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "date is required")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), id, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]string, 0, len(slots))
	for _, m := range slots {
		out = append(out, timezone.FormatMinute(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"professional_id": id,
		"date":            date,
		"slots":           out,
	})
}

// ======================================================
// LOCK
// ======================================================

func (h *ScheduleHandler) Status(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	open, err := h.lock.IsOpen(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"professional_id": id, "open": open})
}

func (h *ScheduleHandler) Close(c *gin.Context) {
	h.changeLock(c, h.lock.Close)
}

func (h *ScheduleHandler) Open(c *gin.Context) {
	h.changeLock(c, h.lock.Open)
}

func (h *ScheduleHandler) changeLock(c *gin.Context, apply lockChange) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req LockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	state, err := apply(c.Request.Context(), middleware.CurrentActor(c), id, req.Date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ======================================================
// AGENDAS
// ======================================================

func (h *ScheduleHandler) ProfessionalAgenda(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	items, err := h.agenda.ProfessionalAgenda(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *ScheduleHandler) ClientAgenda(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	items, err := h.agenda.ClientAgenda(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, items)
}
