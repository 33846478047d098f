package api

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"blog-agents/frontend"
	"blog-agents/internal/config"
)

func SetupRouter(cfg *config.Config, writer ContentWriter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), RequestIDMiddleware(), RecoveryMiddleware())

	subpath := cfg.Server.Subpath // "" or a path starting with '/', e.g. "/blog"

	r.SetHTMLTemplate(frontend.Templates())

	r.GET(path.Join("/", subpath), func(c *gin.Context) {
		c.HTML(http.StatusOK, frontend.IndexTemplate, gin.H{"subpath": subpath})
	})

	group := r.Group(subpath)
	{
		group.GET("/health", healthHandler)
		group.GET("/config", configHandler(cfg))
		group.POST("/generate", GenerateHandler(writer))
	}
	return r
}
