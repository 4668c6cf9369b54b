package middleware

import (
	"net/http"

	"taskping/taskping/services"
	"taskping/taskping/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards every task and settings route. Requests without a
// valid session cookie are bounced to the login page.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := authService.ValidateSession(tokenString)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Store user info in the context for later use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
