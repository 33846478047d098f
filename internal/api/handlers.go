package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-agents/internal/config"
)

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"gemini": gin.H{
				"model":             cfg.Gemini.Model,
				"temperature":       cfg.Gemini.Temperature,
				"top_p":             cfg.Gemini.TopP,
				"top_k":             cfg.Gemini.TopK,
				"max_output_tokens": cfg.Gemini.MaxOutputTokens,
				"safety_threshold":  cfg.Gemini.SafetyThreshold,
			},
		})
	}
}
