package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const ContextActor = "actor"

type ActorResolver interface {
	Resolve(ctx context.Context, id uint) (*models.Actor, error)
}

// LoadActor runs after AuthMiddleware and stores the live actor record, so
// role changes and disables apply without waiting for the token to expire.
func LoadActor(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetUint(ContextActorID)
		if id == 0 {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "no authenticated actor")
			return
		}

		a, err := resolver.Resolve(c.Request.Context(), id)
		if err != nil {
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		c.Set(ContextActor, a)
		c.Next()
	}
}

// CurrentActor returns the actor stored by LoadActor, or nil.
func CurrentActor(c *gin.Context) *models.Actor {
	v, ok := c.Get(ContextActor)
	if !ok {
		return nil
	}
	a, _ := v.(*models.Actor)
	return a
}

// RequireRoles admits only actors holding one of roles.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		a := CurrentActor(c)
		if a == nil {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "no authenticated actor")
			return
		}

		if !allowed[domain.Role(a.Role)] {
			abort(c, http.StatusForbidden, httperr.CodeForbidden, "your role cannot access this resource")
			return
		}

		c.Next()
	}
}
