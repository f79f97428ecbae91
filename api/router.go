// Package api assembles the gin engine: middleware chain, route groups and
// the API version prefix.
package api

import (
	"net/http"

	catalogctrl "comedor/api/catalog"
	healthctrl "comedor/api/health"
	"comedor/api/middleware"
	orderctrl "comedor/api/order"
	userctrl "comedor/api/user"
	"comedor/config"

	"github.com/gin-gonic/gin"
)

// Controllers groups everything the router mounts.
type Controllers struct {
	Order   *orderctrl.Controller
	Catalog *catalogctrl.Controller
	User    *userctrl.Controller
	Health  *healthctrl.Controller
}

// NewRouter builds the gin engine with the full middleware chain and all
// routes under /api/v1.
func NewRouter(cfg *config.Config, controllers Controllers) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(&cfg.CORS),
		middleware.RateLimit(&cfg.Server.RateLimit),
	)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
		})
	})

	v1 := router.Group("/api/v1")
	controllers.Health.RegisterRoutes(v1)
	controllers.User.RegisterRoutes(v1)
	controllers.Catalog.RegisterRoutes(v1)
	controllers.Order.RegisterRoutes(v1)

	return router
}
