// Package server hosts the chat API: the reasoning agent, the graph
// pipeline behind it, and the HTTP surface the frontend talks to.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/server/middleware"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/util"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/agent"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"
	oai "github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai/ollama"
	gai "github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai/openai"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"

	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aiClient := newAIClient()

	mcpClient := mcp.NewClient(mcp.NewClientParams{
		BaseURL: util.GetEnvString("MCP_SERVER_URL", "http://localhost:8000"),
	})
	if err := mcpClient.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect to tool server", "err", err)
	}

	agnt := agent.NewAgent(agent.NewAgentParams{
		Name:          "GEOINT Knowledge Agent",
		AI:            aiClient,
		MCP:           mcpClient,
		MaxIterations: int(util.GetEnvNumeric("AGENT_MAX_ITERATIONS", 5)),
	})
	if err := agnt.InitTools(ctx); err != nil {
		logger.Fatal("Failed to initialize agent tools", "err", err)
	}

	app := &mid.App{
		Agent:    agnt,
		MCP:      mcpClient,
		AiClient: aiClient,
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}

func newAIClient() ai.ChatClient {
	adapter := util.GetEnv("AI_ADAPTER")

	switch adapter {
	case "ollama":
		client, err := oai.NewGeoOllamaClient(oai.NewGeoOllamaClientParams{
			ChatModel: util.GetEnv("AI_CHAT_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGeoOpenAIClient(gai.NewGeoOpenAIClientParams{
			ChatModel: util.GetEnv("AI_CHAT_MODEL"),

			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}
}
