package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/internal/handler"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/metrics"
	"github.com/deepak11-repo/Lionheart-Mixed-Order-Alert-Summary/pkg/rbac"
)

// MetricsMiddleware records per-request latency labelled by route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	adminHandler *handler.AdminHandler,
	users UserDirectory,
	jwtSecret string,
	db *pgxpool.Pool,
) *Router {
	r := gin.Default()
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Admin surfaces
	api := r.Group("/api/v1")
	api.Use(AuthMiddleware(jwtSecret))
	{
		api.GET("/administrators",
			RequireAnyPermission(users, rbac.PermissionManageOrders, rbac.PermissionManageSite),
			adminHandler.GetAdministrators)
		api.POST("/digest/run",
			RequireAnyPermission(users, rbac.PermissionManageSite),
			adminHandler.TriggerDigest)
		api.GET("/notices", adminHandler.GetNotice)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
