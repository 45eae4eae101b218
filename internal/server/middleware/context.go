package middleware

import (
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/agent"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"

	"github.com/labstack/echo/v4"
)

// App carries the long-lived clients every request handler needs: the
// reasoning agent, the tool-server client and the chat model behind it.
type App struct {
	Agent    *agent.Agent
	MCP      *mcp.Client
	AiClient ai.ChatClient
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
