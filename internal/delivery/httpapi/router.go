package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the API routes and the static chat page.
func NewRouter(h *Handler, staticDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/ping", h.Ping)
		api.POST("/ask", h.Ask)
		api.POST("/assist", h.Assist)
	}

	if staticDir != "" {
		r.StaticFile("/", staticDir+"/index.html")
		r.Static("/assets", staticDir)
	}

	return r
}
