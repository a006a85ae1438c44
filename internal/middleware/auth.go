package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

const (
	ContextActorID   = "actorID"
	ContextActorRole = "actorRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "invalid authorization header")
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "invalid token claims")
			return
		}

		actorID, ok := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		if !ok || actorID <= 0 {
			abort(c, http.StatusUnauthorized, httperr.CodeUnauthenticated, "invalid token payload")
			return
		}

		c.Set(ContextActorID, uint(actorID))
		c.Set(ContextActorRole, role)

		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, httperr.HTTPError{Code: code, Message: message})
}
