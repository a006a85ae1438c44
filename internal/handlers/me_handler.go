package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

type MeHandler struct {
	agenda *ucSchedule.AgendaQuery
}

func NewMeHandler(agenda *ucSchedule.AgendaQuery) *MeHandler {
	return &MeHandler{agenda: agenda}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentActor(c))
}

// MyAgenda lists the caller's pending bookings.
func (h *MeHandler) MyAgenda(c *gin.Context) {
	bookings, err := h.agenda.MyAgenda(c.Request.Context(), middleware.CurrentActor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, dto.FromBookings(bookings))
}
