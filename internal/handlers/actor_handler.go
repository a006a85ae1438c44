package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucActor "github.com/BruksfildServices01/salon-scheduler/internal/usecase/actor"
)

type ActorHandler struct {
	directory *ucActor.Directory
	update    *ucActor.UpdateActor
	disable   *ucActor.DisableActor
}

func NewActorHandler(
	directory *ucActor.Directory,
	update *ucActor.UpdateActor,
	disable *ucActor.DisableActor,
) *ActorHandler {
	return &ActorHandler{
		directory: directory,
		update:    update,
		disable:   disable,
	}
}

type UpdateActorRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ActorHandler) List(c *gin.Context) {
	actors, err := h.directory.List(c.Request.Context(), c.Query("role"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, actors)
}

func (h *ActorHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	a, err := h.directory.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

// ======================================================
// UPDATE / DISABLE
// ======================================================

func (h *ActorHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdateActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	a, err := h.update.Execute(c.Request.Context(), middleware.CurrentActor(c), id, ucActor.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, a)
}

func (h *ActorHandler) Disable(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.disable.Execute(c.Request.Context(), middleware.CurrentActor(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
