package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger assigns a request ID, logs every request as a key=value line
// and recovers from handler panics with a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Printf(
					"request_panic request_id=%s method=%s path=%s error=%q stack=%s",
					requestID, c.Request.Method, c.Request.URL.Path, err.Error(), debug.Stack(),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"detail": "Internal server error.",
				})
				return
			}

			log.Printf(
				"request request_id=%s status=%d method=%s path=%s client_ip=%s user_id=%d latency=%s",
				requestID,
				c.Writer.Status(),
				c.Request.Method,
				c.Request.URL.Path,
				c.ClientIP(),
				c.GetInt64("user_id"),
				time.Since(start),
			)
		}()

		c.Next()
	}
}
