package server

import (
	"github.com/aayushsoam1/cogni-mind/internal/server/middleware"
	"github.com/aayushsoam1/cogni-mind/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, limiter *middleware.RateLimiter) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	generate := []echo.MiddlewareFunc{middleware.RequirePermission("mindmap.generate")}
	if limiter != nil {
		generate = append(generate, limiter.Middleware)
	}

	// Stateless generation
	apiRoutes.POST("/generate", routes.GenerateHandler, generate...)

	// Session routes
	apiRoutes.POST("/sessions", routes.CreateSessionHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler, middleware.RequireAnyPermission("mindmap.view", "mindmap.edit"))
	apiRoutes.DELETE("/sessions/:id", routes.DeleteSessionHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.POST("/sessions/:id/generate", routes.GenerateSessionHandler, generate...)

	// Graph editing routes
	apiRoutes.POST("/sessions/:id/nodes", routes.AddNodeHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.PATCH("/sessions/:id/nodes/:node_id", routes.EditNodeHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.DELETE("/sessions/:id/nodes/:node_id", routes.DeleteNodeHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.POST("/sessions/:id/edges", routes.ConnectNodesHandler, middleware.RequirePermission("mindmap.edit"))
	apiRoutes.PUT("/sessions/:id/selection", routes.SelectNodeHandler, middleware.RequireAnyPermission("mindmap.view", "mindmap.edit"))

	// Metrics
	apiRoutes.GET("/metrics", routes.GetMetricsHandler, middleware.RequirePermission("metrics.view"))
}
