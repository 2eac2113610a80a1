package handlers

import (
	"github.com/gin-gonic/gin"

	"vlearn-backend/internal/service"
	"vlearn-backend/utils"
)

// RequireAuth validates the bearer token and checks the session has not been
// revoked, then stashes the user ID in the request context.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.BearerToken(c)
		claims, err := utils.ValidateJWT(token)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or missing token")
			c.Abort()
			return
		}

		alive, err := auth.SessionAlive(c.Request.Context(), token)
		if err != nil {
			utils.InternalErrorResponse(c, "Failed to verify session", err)
			c.Abort()
			return
		}
		if !alive {
			utils.UnauthorizedResponse(c, "Session expired or signed out")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
