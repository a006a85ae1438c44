package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucBooking "github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create    *ucBooking.CreateBooking
	cancel    *ucBooking.CancelBooking
	complete  *ucBooking.CompleteBooking
	ownership *ucBooking.Ownership
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	cancel *ucBooking.CancelBooking,
	complete *ucBooking.CompleteBooking,
	ownership *ucBooking.Ownership,
) *BookingHandler {
	return &BookingHandler{
		create:    create,
		cancel:    cancel,
		complete:  complete,
		ownership: ownership,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientID       *uint  `json:"client_id"`
	ProfessionalID *uint  `json:"professional_id"`
	Phone          string `json:"phone"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Service        string `json:"service" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	minute, ok := minuteOf(c, req.Time)
	if !ok {
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.CurrentActor(c), ucBooking.CreateBookingInput{
		ClientID:       req.ClientID,
		Phone:          req.Phone,
		Date:           req.Date,
		Minute:         minute,
		Service:        domain.Service(req.Service),
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromBooking(b))
}

// ======================================================
// GET
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.ownership.Get(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(b))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(b))
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.complete.Execute(c.Request.Context(), middleware.CurrentActor(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(b))
}
