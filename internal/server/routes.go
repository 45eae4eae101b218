package server

import (
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	apiRoutes.POST("/chat", routes.PostChatHandler)
	apiRoutes.POST("/graph", routes.PostGraphHandler)
	apiRoutes.GET("/tools", routes.GetToolsHandler)
}
