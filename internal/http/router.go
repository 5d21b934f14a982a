// README: HTTP router registration.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripplan/internal/http/handlers"
	"tripplan/internal/http/middleware"
	"tripplan/internal/obs"
)

type RouterDeps struct {
	Trips   *handlers.TripHandler
	Metrics *obs.Metrics
	Logger  *slog.Logger
	// APIKey guards the /api group when non-empty.
	APIKey string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(deps.Logger), middleware.Recovery(deps.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapF(deps.Metrics.Handler()))

	api := r.Group("/api", middleware.APIKey(deps.APIKey))
	api.POST("/trips/plan", deps.Trips.Plan)
	api.POST("/trips/choose", deps.Trips.Choose)

	return r
}
