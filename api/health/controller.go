// Package health exposes the liveness/readiness endpoint.
package health

import (
	"context"
	"time"

	"comedor/api/response"
	"comedor/pkg/errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller reports process and storage health. db is nil when the memory
// backend is active; only liveness is reported then.
type Controller struct {
	db      *gorm.DB
	name    string
	version string
}

// NewController creates the health controller.
func NewController(db *gorm.DB, name, version string) *Controller {
	return &Controller{db: db, name: name, version: version}
}

// RegisterRoutes mounts the health routes.
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/health", c.Health)
	router.GET("/health/live", c.Live)
	router.GET("/health/ready", c.Health)
}

type healthStatus struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// Live reports process liveness without touching the database.
func (c *Controller) Live(ctx *gin.Context) {
	response.HandleSuccess(ctx, healthStatus{
		Name:    c.name,
		Version: c.version,
		Status:  "ok",
	}, "alive")
}

// Health pings the database (when one is configured) and reports status.
func (c *Controller) Health(ctx *gin.Context) {
	status := healthStatus{
		Name:     c.name,
		Version:  c.version,
		Status:   "ok",
		Database: "memory",
	}

	if c.db != nil {
		status.Database = "mysql"
		sqlDB, err := c.db.DB()
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(pingCtx)
		}
		if err != nil {
			response.HandleAppError(ctx, errors.Wrap(err, errors.CodeInternal, "database unreachable"))
			return
		}
	}

	response.HandleSuccess(ctx, status, "healthy")
}
