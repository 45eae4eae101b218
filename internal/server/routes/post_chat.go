package routes

import (
	"net/http"
	"strings"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/server/middleware"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/agent"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/graph"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"

	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var heuristicLocations = []string{"Washington DC", "Virginia", "Maryland"}

func PostChatHandler(c echo.Context) error {
	type chatParams struct {
		Message        string `json:"message" validate:"required"`
		ConversationID string `json:"conversation_id"`
	}

	type chatGraph struct {
		Nodes  []graph.VisNode `json:"nodes"`
		Edges  []graph.VisEdge `json:"edges"`
		Config graph.VisConfig `json:"config"`
	}

	type chatResponse struct {
		ConversationID string                `json:"conversation_id"`
		Response       string                `json:"response"`
		ToolCalls      []agent.ToolExecution `json:"tool_calls"`
		Graph          chatGraph             `json:"graph"`
	}

	params := new(chatParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if params.ConversationID == "" {
		params.ConversationID = "conv_" + gonanoid.Must(12)
	}

	ctx := c.Request().Context()
	app := c.(*middleware.AppContext).App

	answer, executions, err := app.Agent.ProcessQuery(ctx, params.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if executions == nil {
		executions = []agent.ToolExecution{}
	}

	// The answer itself often carries structured tool output, so it is
	// fed to the extractors as a payload of its own.
	var payloads []triple.Payload
	if strings.TrimSpace(answer) != "" {
		payloads = append(payloads, triple.TextPayload(answer))
	}
	payloads = append(payloads, supplementalPayloads(c, params.Message)...)

	statements := graph.ParsePayloads(ctx, payloads)
	queryContext := graph.ExtractQueryContext(params.Message, statements)
	g := graph.BuildGraph(queryContext.RelevantStatements)
	nodes, edges := graph.Render(g)

	logger.Info("Chat turn processed",
		"conversation", params.ConversationID,
		"tool_calls", len(executions),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
	)

	return c.JSON(http.StatusOK, chatResponse{
		ConversationID: params.ConversationID,
		Response:       answer,
		ToolCalls:      executions,
		Graph: chatGraph{
			Nodes:  nodes,
			Edges:  edges,
			Config: graph.DefaultVisConfig(500, true),
		},
	})
}

// supplementalPayloads widens the graph beyond the agent's answer with
// direct tool calls keyed off the query: location names pull nearby
// facilities, facility-type keywords pull a larger sample, anything else
// a smaller one. Failures only cost the extra payload.
func supplementalPayloads(c echo.Context, userQuery string) []triple.Payload {
	ctx := c.Request().Context()
	mcpClient := c.(*middleware.AppContext).App.MCP
	lowered := strings.ToLower(userQuery)

	var payloads []triple.Payload

	switch {
	case containsAnyKeyword(lowered, "washington", "virginia", "maryland", "dc"):
		for _, location := range heuristicLocations {
			if !strings.Contains(lowered, strings.ToLower(location)) {
				continue
			}
			result, err := mcpClient.CallTool(ctx, "get_facilities_near", map[string]any{
				"location": location,
				"limit":    20,
			})
			if err != nil {
				logger.Warn("Failed to fetch facilities for location", "location", location, "err", err)
				break
			}
			payloads = append(payloads, resultPayload(result))
			break
		}
	case containsAnyKeyword(lowered, "military", "base", "airport", "government"):
		if p, ok := samplePayload(c, 50); ok {
			payloads = append(payloads, p)
		}
	default:
		if p, ok := samplePayload(c, 30); ok {
			payloads = append(payloads, p)
		}
	}

	return payloads
}

func samplePayload(c echo.Context, limit int) (triple.Payload, bool) {
	ctx := c.Request().Context()
	mcpClient := c.(*middleware.AppContext).App.MCP

	result, err := mcpClient.CallTool(ctx, "get_sample_data", map[string]any{"limit": limit})
	if err != nil {
		logger.Warn("Failed to fetch sample data", "err", err)
		return triple.Payload{}, false
	}
	return resultPayload(result), true
}

func containsAnyKeyword(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func resultPayload(result mcp.ToolResult) triple.Payload {
	blocks := make([]triple.Block, 0, len(result.Content))
	for _, b := range result.Content {
		blocks = append(blocks, triple.Block{Type: b.Type, Text: b.Text})
	}
	return triple.StructuredPayload(blocks...)
}
