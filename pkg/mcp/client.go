package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
)

// Client talks to a remote tool server over HTTP. Create one with
// NewClient and call Connect before using it; Connect probes the health
// endpoint, initializes the protocol session and caches the tool listing.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	tools       map[string]Tool
	initialized bool
}

// NewClientParams configures a Client.
type NewClientParams struct {
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a tool-server client. The default request timeout is
// 30 seconds.
func NewClient(params NewClientParams) *Client {
	timeout := params.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(params.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tools:      map[string]Tool{},
	}
}

// Connect verifies the server is reachable, initializes the session and
// loads the tool listing.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.checkHealth(ctx); err != nil {
		return fmt.Errorf("tool server unreachable: %w", err)
	}
	if err := c.initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize tool session: %w", err)
	}
	logger.Info("Connected to tool server", "base_url", c.baseURL, "tools", len(c.tools))
	return nil
}

func (c *Client) initialize(ctx context.Context) error {
	if c.initialized {
		return nil
	}

	req := InitializeRequest{
		ProtocolVersion: "1.0",
		ClientInfo: map[string]any{
			"name":    "geoint-graph-chat",
			"version": "1.0",
		},
	}
	var res InitializeResult
	if err := c.post(ctx, "/initialize", req, &res); err != nil {
		return err
	}

	if err := c.loadTools(ctx); err != nil {
		return err
	}

	c.initialized = true
	return nil
}

func (c *Client) loadTools(ctx context.Context) error {
	var res ToolsResponse
	if err := c.get(ctx, "/tools", &res); err != nil {
		return err
	}

	c.tools = make(map[string]Tool, len(res.Tools))
	for _, tool := range res.Tools {
		c.tools[tool.Name] = tool
	}
	return nil
}

// ListTools returns the cached tool listing, connecting first if needed.
// Tools are returned sorted by name.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	if !c.initialized {
		if err := c.initialize(ctx); err != nil {
			return nil, err
		}
	}

	tools := make([]Tool, 0, len(c.tools))
	for _, tool := range c.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools, nil
}

// HasTool reports whether the server exposes a tool by that name.
func (c *Client) HasTool(name string) bool {
	_, ok := c.tools[name]
	return ok
}

// CallTool invokes a named tool. Transport and server errors come back as
// error-flagged results rather than Go errors so a failed call degrades
// to an explanatory text block instead of aborting the turn; only unknown
// tool names are a hard error.
func (c *Client) CallTool(ctx context.Context, name string, arguments map[string]any) (ToolResult, error) {
	if !c.initialized {
		if err := c.initialize(ctx); err != nil {
			return ToolResult{}, err
		}
	}
	if _, ok := c.tools[name]; !ok {
		return ToolResult{}, fmt.Errorf("tool %q not found", name)
	}

	logger.Info("Calling tool", "tool", name)

	var res ToolResult
	if err := c.post(ctx, "/tools/"+name, ToolCallRequest{Arguments: arguments}, &res); err != nil {
		logger.Error("Tool call failed", "tool", name, "err", err)
		return ErrorResult(fmt.Sprintf("Error calling tool %q: %v", name, err)), nil
	}

	return res, nil
}

// HealthCheck reports whether the server answers its health endpoint.
func (c *Client) HealthCheck(ctx context.Context) bool {
	return c.checkHealth(ctx) == nil
}

func (c *Client) checkHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", res.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("%s %s returned status %d: %s", req.Method, req.URL.Path, res.StatusCode, strings.TrimSpace(string(payload)))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
