package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CareSlotLabs/hospital-scheduler/internal/domain/actor"
)

// RequireRole gates a route group on an explicit allowed-role set. It runs
// after AuthMiddleware and never touches the database.
func RequireRole(roles ...actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		a := CurrentActor(c)

		if !a.Allowed(roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission_denied"})
			return
		}

		c.Next()
	}
}
