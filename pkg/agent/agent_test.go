package agent

import (
	"strings"
	"testing"
)

func TestFormatToolResults(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := formatToolResults(nil); got != "No previous tool results" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("status and truncation", func(t *testing.T) {
		executions := []ToolExecution{
			{Tool: "count_triples", Content: "Total triples in RDF store: 80"},
			{Tool: "get_sample_data", Content: strings.Repeat("x", 300), IsError: true},
		}

		got := formatToolResults(executions)
		if !strings.Contains(got, "- count_triples: SUCCESS") {
			t.Fatalf("missing success line in %q", got)
		}
		if !strings.Contains(got, "- get_sample_data: ERROR") {
			t.Fatalf("missing error line in %q", got)
		}
		if strings.Contains(got, strings.Repeat("x", 201)) {
			t.Fatal("content not truncated")
		}
	})
}

func TestAgentHistory(t *testing.T) {
	a := NewAgent(NewAgentParams{Name: "test"})

	a.appendHistory("user", "where is the pentagon?")
	a.appendHistory("assistant", "Arlington, Virginia.")
	a.appendHistory("user", "   ")

	history := a.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("got %v", history)
	}

	a.ClearHistory()
	if len(a.History()) != 0 {
		t.Fatal("history not cleared")
	}
}

func TestHistoryMessagesWindow(t *testing.T) {
	a := NewAgent(NewAgentParams{Name: "test"})
	for i := 0; i < 8; i++ {
		a.appendHistory("user", strings.Repeat("q", i+1))
	}

	messages := a.historyMessages()
	if len(messages) != historyWindow {
		t.Fatalf("expected %d messages, got %d", historyWindow, len(messages))
	}
	// newest messages survive
	if messages[len(messages)-1].Message != strings.Repeat("q", 8) {
		t.Fatalf("last message = %q", messages[len(messages)-1].Message)
	}
}

func TestFormatToolsEmpty(t *testing.T) {
	a := NewAgent(NewAgentParams{Name: "test"})
	if got := a.formatTools(); got != "No tools available" {
		t.Fatalf("got %q", got)
	}
}
