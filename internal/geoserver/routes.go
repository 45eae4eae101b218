package geoserver

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/store"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, triples *store.TripleStore) {
	tools := store.NewToolset(triples)
	var initialized atomic.Bool

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":          "healthy",
			"timestamp":       time.Now().Format(time.RFC3339),
			"mcp_initialized": initialized.Load(),
			"rdf_triples":     triples.Len(),
			"store_type":      "in-memory",
		})
	})

	e.POST("/initialize", func(c echo.Context) error {
		req := mcp.InitializeRequest{ProtocolVersion: "1.0"}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}
		if req.ProtocolVersion == "" {
			req.ProtocolVersion = "1.0"
		}

		initialized.Store(true)
		logger.Info("Tool server initialized", "triples", triples.Len())

		return c.JSON(http.StatusOK, mcp.InitializeResult{
			ProtocolVersion: req.ProtocolVersion,
			ServerInfo: mcp.ServerInfo{
				Name:    "geoint-tool-server",
				Version: "1.0.0",
			},
			Capabilities: map[string]any{
				"tools":     map[string]any{},
				"resources": map[string]any{},
			},
		})
	})

	e.GET("/tools", func(c echo.Context) error {
		definitions := tools.Definitions()
		logger.Info("Listed tools", "count", len(definitions))
		return c.JSON(http.StatusOK, mcp.ToolsResponse{Tools: definitions})
	})

	e.POST("/tools/:name", func(c echo.Context) error {
		name := c.Param("name")

		req := mcp.ToolCallRequest{}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		}

		logger.Info("Calling tool", "tool", name, "args", req.Arguments)

		result, err := tools.Call(name, req.Arguments)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, result)
	})
}
