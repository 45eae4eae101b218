package routes

import (
	"net/http"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/server/middleware"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"

	"github.com/labstack/echo/v4"
)

// GetToolsHandler proxies the tool listing from the tool server.
func GetToolsHandler(c echo.Context) error {
	ctx := c.Request().Context()
	mcpClient := c.(*middleware.AppContext).App.MCP

	tools, err := mcpClient.ListTools(ctx)
	if err != nil {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "Tool server unavailable"})
	}

	return c.JSON(http.StatusOK, mcp.ToolsResponse{Tools: tools})
}
