package users_middleware

import (
	"net/http"

	users_models "vazifa/internal/features/users/models"
	users_services "vazifa/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "vazifa_session"

// AuthMiddleware validates the session token and adds the caller identity
// to the request context. The token comes from the session cookie, with an
// Authorization header fallback for non-browser clients.
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := extractToken(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			ctx.Abort()
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "invalid session token"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	token := ctx.GetHeader("Authorization")
	if len(token) > 7 && token[:7] == "Bearer " {
		return token[7:]
	}

	return token
}

// GetUserFromContext helper function to extract the caller from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
