package middleware

import (
	"net/http"
	"strings"

	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the Bearer token and stores user_id and username in the
// request context.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			abortUnauthorized(c, "Authentication credentials were not provided.")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Invalid Authorization header.")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Invalid Authorization header.")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Given token not valid for any token type.")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Detail(c, http.StatusUnauthorized, message)
	c.Abort()
}

// UserID reads the authenticated user from the context. Zero means the auth
// middleware did not run.
func UserID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}
