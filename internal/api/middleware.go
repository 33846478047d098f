package api

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// RequestIDMiddleware tags every request with a UUID, echoed in the
// X-Request-ID response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RecoveryMiddleware turns a panic into the same 500 envelope handlers use.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		details := fmt.Sprintf("panic: %v\n\n%s", recovered, debug.Stack())
		log.Printf("[API] Server Error [%s]: %v", RequestIDFromContext(c), recovered)
		log.Printf("[API] Error details:\n%s", details)
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
			Error:   fmt.Sprint(recovered),
			Details: details,
		})
	})
}
