package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"blog-agents/internal/llm"
)

// ContentWriter produces the HTML blog post for a topic.
type ContentWriter interface {
	Write(ctx context.Context, topic string) (string, error)
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// POST /generate
func GenerateHandler(writer ContentWriter) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, "Server Error", err.Error(), err)
			return
		}

		text, err := writer.Write(c.Request.Context(), req.Prompt)
		if err != nil {
			label := "API Error"
			if kind := llm.KindOf(err); kind != 0 {
				label = fmt.Sprintf("API Error (%s)", kind)
			}
			respondError(c, label, "Gemini API error: "+err.Error(), err)
			return
		}

		// The payload is HTML; keep it unescaped for the page.
		c.PureJSON(http.StatusOK, generateResponse{Text: text})
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// errorDetails renders err with a stack trace, attaching one at the call
// site when err does not carry its own.
func errorDetails(err error) string {
	var st stackTracer
	if !errors.As(err, &st) {
		err = errors.WithStack(err)
	}
	return fmt.Sprintf("%+v", err)
}

func respondError(c *gin.Context, label, msg string, err error) {
	details := errorDetails(err)
	log.Printf("[API] %s [%s]: %v", label, RequestIDFromContext(c), err)
	log.Printf("[API] Error details:\n%s", details)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Error:   msg,
		Details: details,
	})
}
