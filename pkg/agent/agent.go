// Package agent implements the reasoning loop that answers user
// questions by orchestrating graph tools through an MCP client and a
// chat model.
package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/internal/util"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkoukk/tiktoken-go"
)

const (
	// historyWindow bounds how many past messages feed each reasoning step.
	historyWindow = 5
	// historyTokenBudget caps the token weight of that window.
	historyTokenBudget = 8000
)

// Message is one entry in the agent's conversation history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ToolExecution records one completed tool call inside a query.
type ToolExecution struct {
	CallID    string         `json:"call_id"`
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments"`
	Content   string         `json:"content"`
	IsError   bool           `json:"is_error"`
}

// Agent answers queries by iterating between the chat model and the
// tool server until the model commits to an answer.
type Agent struct {
	name          string
	ai            ai.ChatClient
	mcp           *mcp.Client
	maxIterations int

	mu      sync.Mutex
	tools   []mcp.Tool
	history []Message
}

// NewAgentParams configures an Agent.
type NewAgentParams struct {
	Name          string
	AI            ai.ChatClient
	MCP           *mcp.Client
	MaxIterations int
}

// NewAgent creates an agent. MaxIterations defaults to 5.
func NewAgent(params NewAgentParams) *Agent {
	if params.MaxIterations <= 0 {
		params.MaxIterations = 5
	}
	return &Agent{
		name:          params.Name,
		ai:            params.AI,
		mcp:           params.MCP,
		maxIterations: params.MaxIterations,
	}
}

// InitTools loads the tool listing from the MCP server.
func (a *Agent) InitTools(ctx context.Context) error {
	tools, err := a.mcp.ListTools(ctx)
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}

	a.mu.Lock()
	a.tools = tools
	a.mu.Unlock()

	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	logger.Info("Initialized agent tools", "count", len(tools), "tools", names)
	return nil
}

// ProcessQuery runs the reasoning loop for one user query and returns
// the answer together with the tool calls it made along the way.
func (a *Agent) ProcessQuery(ctx context.Context, userQuery string) (string, []ToolExecution, error) {
	a.appendHistory("user", userQuery)

	answer, executions, err := a.reasoningLoop(ctx, userQuery)
	if err != nil {
		logger.Error("Error processing query", "err", err)
		return fmt.Sprintf("I encountered an error while processing your query: %s", err), executions, nil
	}

	a.appendHistory("assistant", answer)
	return answer, executions, nil
}

func (a *Agent) reasoningLoop(ctx context.Context, userQuery string) (string, []ToolExecution, error) {
	var executions []ToolExecution

	for iteration := 1; iteration <= a.maxIterations; iteration++ {
		action, err := a.nextAction(ctx, userQuery, executions, iteration)
		if err != nil {
			return "", executions, err
		}

		switch action.Type {
		case ActionToolCall:
			executions = append(executions, a.executeToolCall(ctx, action))
		case ActionFinalAnswer, ActionClarification:
			return action.Content, executions, nil
		}
	}

	answer, err := a.synthesize(ctx, userQuery, executions)
	return answer, executions, err
}

func (a *Agent) nextAction(ctx context.Context, userQuery string, executions []ToolExecution, iteration int) (Action, error) {
	messages := a.historyMessages()
	messages = append(messages, ai.ChatMessage{
		Role: "user",
		Message: fmt.Sprintf(
			ai.ReasoningPromptTemplate,
			iteration, a.maxIterations,
			userQuery,
			a.formatTools(),
			formatToolResults(executions),
		),
	})

	response, err := util.RetryWithContext(ctx, 2, func(ctx context.Context) (string, error) {
		return a.ai.GenerateChat(ctx, messages,
			ai.WithSystemPrompts(ai.AgentSystemPrompt),
			ai.WithTemperature(0.3),
		)
	})
	if err != nil {
		return Action{}, fmt.Errorf("generate next action: %w", err)
	}

	return ParseAction(response), nil
}

func (a *Agent) executeToolCall(ctx context.Context, action Action) ToolExecution {
	callID := fmt.Sprintf("%s_%s", action.Tool, gonanoid.Must(8))

	execution := ToolExecution{
		CallID:    callID,
		Tool:      action.Tool,
		Arguments: action.Arguments,
	}

	if !a.mcp.HasTool(action.Tool) {
		execution.Content = fmt.Sprintf("Tool '%s' not found. Available tools: %s", action.Tool, a.toolNames())
		execution.IsError = true
		return execution
	}

	result, err := a.mcp.CallTool(ctx, action.Tool, action.Arguments)
	if err != nil {
		logger.Error("Error executing tool", "tool", action.Tool, "err", err)
		execution.Content = fmt.Sprintf("Error executing tool: %s", err)
		execution.IsError = true
		return execution
	}

	execution.Content = result.JoinText()
	execution.IsError = result.IsError
	return execution
}

// synthesize produces an answer from accumulated tool results once the
// iteration budget is exhausted.
func (a *Agent) synthesize(ctx context.Context, userQuery string, executions []ToolExecution) (string, error) {
	prompt := fmt.Sprintf(ai.SynthesisPromptTemplate, userQuery, formatToolResults(executions))

	answer, err := util.RetryWithContext(ctx, 2, func(ctx context.Context) (string, error) {
		return a.ai.GenerateCompletion(ctx, prompt, ai.WithTemperature(0.3))
	})
	if err != nil {
		return fmt.Sprintf("I gathered some information but encountered an error generating the final response: %s", err), nil
	}
	return answer, nil
}

func (a *Agent) appendHistory(role, content string) {
	if strings.TrimSpace(content) == "" {
		return
	}
	a.mu.Lock()
	a.history = append(a.history, Message{Role: role, Content: content, Timestamp: time.Now()})
	a.mu.Unlock()
}

// historyMessages returns the recent conversation trimmed to the
// message window and the token budget, oldest dropped first.
func (a *Agent) historyMessages() []ai.ChatMessage {
	a.mu.Lock()
	recent := a.history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}
	recent = append([]Message(nil), recent...)
	a.mu.Unlock()

	enc, err := tiktoken.GetEncoding("o200k_base")
	if err == nil {
		total := 0
		counts := make([]int, len(recent))
		for i, m := range recent {
			counts[i] = len(enc.Encode(m.Content, nil, nil))
			total += counts[i]
		}
		for len(recent) > 1 && total > historyTokenBudget {
			total -= counts[0]
			counts = counts[1:]
			recent = recent[1:]
		}
	}

	messages := make([]ai.ChatMessage, 0, len(recent))
	for _, m := range recent {
		messages = append(messages, ai.ChatMessage{Role: m.Role, Message: m.Content})
	}
	return messages
}

// History returns a copy of the conversation history.
func (a *Agent) History() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Message(nil), a.history...)
}

// ClearHistory resets the conversation.
func (a *Agent) ClearHistory() {
	a.mu.Lock()
	a.history = nil
	a.mu.Unlock()
}

func (a *Agent) formatTools() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.tools) == 0 {
		return "No tools available"
	}

	descriptions := make([]string, 0, len(a.tools))
	for _, t := range a.tools {
		descriptions = append(descriptions, fmt.Sprintf("- %s: %s", t.Name, t.Description))
	}
	return strings.Join(descriptions, "\n")
}

func (a *Agent) toolNames() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	names := make([]string, 0, len(a.tools))
	for _, t := range a.tools {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func formatToolResults(executions []ToolExecution) string {
	if len(executions) == 0 {
		return "No previous tool results"
	}

	formatted := make([]string, 0, len(executions))
	for _, e := range executions {
		status := "SUCCESS"
		if e.IsError {
			status = "ERROR"
		}
		content := e.Content
		if len(content) > 200 {
			content = content[:200]
		}
		formatted = append(formatted, fmt.Sprintf("- %s: %s\n  %s...", e.Tool, status, content))
	}
	return strings.Join(formatted, "\n")
}
