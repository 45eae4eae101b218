package agent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
)

// Action kinds produced by the reasoning model.
const (
	ActionToolCall      = "tool_call"
	ActionFinalAnswer   = "final_answer"
	ActionClarification = "clarification"
)

// Action is one parsed decision from a reasoning response.
type Action struct {
	Type      string
	Tool      string
	Arguments map[string]any
	Reasoning string
	Content   string
}

var argumentPatterns = []struct {
	re  *regexp.Regexp
	key string
}{
	{regexp.MustCompile(`"location":\s*"([^"]+)"`), "location"},
	{regexp.MustCompile(`"query":\s*"([^"]+)"`), "query"},
	{regexp.MustCompile(`"facility_type":\s*"([^"]+)"`), "facility_type"},
	{regexp.MustCompile(`"text":\s*"([^"]+)"`), "text"},
	{regexp.MustCompile(`"limit":\s*(\d+)`), "limit"},
}

// ParseAction interprets a reasoning response. Responses without a
// recognizable ACTION line are treated as a final answer so the agent
// degrades gracefully on free-form model output.
func ParseAction(response string) Action {
	lines := strings.Split(strings.TrimSpace(response), "\n")

	actionLine := ""
	for _, line := range lines {
		if strings.HasPrefix(line, "ACTION:") {
			actionLine = strings.TrimSpace(strings.TrimPrefix(line, "ACTION:"))
			break
		}
	}

	switch actionLine {
	case "TOOL_CALL":
		return parseToolCall(lines)
	case "FINAL_ANSWER":
		return Action{Type: ActionFinalAnswer, Content: parseContent(lines)}
	case "CLARIFICATION":
		return Action{Type: ActionClarification, Content: parseContent(lines)}
	default:
		return Action{Type: ActionFinalAnswer, Content: response}
	}
}

func parseToolCall(lines []string) Action {
	action := Action{Type: ActionToolCall, Arguments: map[string]any{}}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "TOOL:"):
			action.Tool = strings.TrimSpace(strings.TrimPrefix(line, "TOOL:"))
		case strings.HasPrefix(line, "ARGUMENTS:"):
			argsText := strings.TrimSpace(strings.TrimPrefix(line, "ARGUMENTS:"))
			if argsText != "" {
				action.Arguments = parseArguments(argsText)
			}
		case strings.HasPrefix(line, "REASONING:"):
			action.Reasoning = strings.TrimSpace(strings.TrimPrefix(line, "REASONING:"))
		}
	}

	logger.Info("Parsed tool call", "tool", action.Tool, "args", action.Arguments)
	return action
}

// parseContent collects the CONTENT value, including any continuation
// lines below it.
func parseContent(lines []string) string {
	var b strings.Builder
	started := false
	for _, line := range lines {
		if strings.HasPrefix(line, "CONTENT:") {
			b.WriteString(strings.TrimSpace(strings.TrimPrefix(line, "CONTENT:")))
			started = true
		} else if started {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

// parseArguments decodes the ARGUMENTS value, falling back to field
// extraction and finally keyword spotting when the model emits broken
// JSON.
func parseArguments(argsText string) map[string]any {
	args := map[string]any{}
	if err := ai.UnmarshalFlexible(argsText, &args); err == nil {
		return args
	}

	for _, p := range argumentPatterns {
		match := p.re.FindStringSubmatch(argsText)
		if match == nil {
			continue
		}
		if p.key == "limit" {
			if n, err := strconv.Atoi(match[1]); err == nil {
				args[p.key] = n
			}
			continue
		}
		args[p.key] = match[1]
	}

	if len(args) == 0 {
		lowered := strings.ToLower(argsText)
		switch {
		case strings.Contains(lowered, "virginia"):
			args["location"] = "Virginia"
		case strings.Contains(lowered, "washington"):
			args["location"] = "Washington DC"
		case strings.Contains(lowered, "military"), strings.Contains(lowered, "base"):
			args["facility_type"] = "Military Base"
		}
	}

	logger.Debug("Fallback argument extraction", "args", args, "input", argsText)
	return args
}
