package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/use-agent/siteadvisor/api/handler"
	"github.com/use-agent/siteadvisor/api/middleware"
	"github.com/use-agent/siteadvisor/config"
	"github.com/use-agent/siteadvisor/fetcher"
	"github.com/use-agent/siteadvisor/models"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain: Recovery → Logger → CORS. The recovery handler logs
// the panic and answers with a generic 500 so internal details never
// reach the client. Unsupported methods on known routes get a 405.
func NewRouter(f *fetcher.Fetcher, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("handler panic", "path", c.Request.URL.Path, "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Analysis failed"})
	}))
	r.Use(gin.Logger())
	r.Use(middleware.CORS())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})

	v1 := r.Group("/api/v1")
	v1.GET("/health", handler.Health(startTime))
	v1.POST("/analyze", handler.Analyze(f))

	return r
}
