// Package mcp implements the HTTP tool protocol spoken between the chat
// backend and the GEOINT tool server: initialize the session, list the
// available tools, and call them by name. Both the client and the server
// share these wire types.
package mcp

// ContentBlock is one typed item in a tool result. Tools in this system
// only emit "text" blocks.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Tool describes a callable tool and its JSON-Schema input contract.
type Tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema any    `json:"inputSchema"`
}

// ToolResult is the outcome of one tool call. IsError marks results that
// carry an error message in their content instead of data.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

// InitializeRequest opens a protocol session.
type InitializeRequest struct {
	ProtocolVersion string         `json:"protocol_version"`
	ClientInfo      map[string]any `json:"client_info"`
}

// InitializeResult confirms the session and reports server capabilities.
type InitializeResult struct {
	ProtocolVersion string         `json:"protocol_version"`
	ServerInfo      ServerInfo     `json:"server_info"`
	Capabilities    map[string]any `json:"capabilities"`
}

// ServerInfo identifies the tool server.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ToolsResponse lists the tools a server exposes.
type ToolsResponse struct {
	Tools []Tool `json:"tools"`
}

// ToolCallRequest carries the arguments for one tool invocation.
type ToolCallRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// TextResult wraps plain text as a successful single-block tool result.
func TextResult(text string) ToolResult {
	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

// ErrorResult wraps an error message as an error-flagged tool result.
func ErrorResult(text string) ToolResult {
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}

// JoinText concatenates the text blocks of a result into one string.
func (r ToolResult) JoinText() string {
	var out string
	for _, block := range r.Content {
		if block.Type == "text" {
			out += block.Text
		}
	}
	return out
}
