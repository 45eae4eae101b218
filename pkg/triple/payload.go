package triple

import (
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/logger"
)

// Block is one typed content item inside a structured tool response.
// Only blocks with Type "text" carry parseable content.
type Block struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type payloadKind int

const (
	payloadText payloadKind = iota
	payloadStructured
)

// Payload is one tool-response payload: either a bare text string or a
// list of typed content blocks. The two shapes are kept as a tagged
// variant so parsing dispatches on the tag instead of sniffing.
type Payload struct {
	kind   payloadKind
	text   string
	blocks []Block
}

// TextPayload wraps a bare string response.
func TextPayload(text string) Payload {
	return Payload{kind: payloadText, text: text}
}

// StructuredPayload wraps a content-block response.
func StructuredPayload(blocks ...Block) Payload {
	return Payload{kind: payloadStructured, blocks: blocks}
}

// ParsePayload extracts statements from one payload. Non-text blocks are
// skipped, and a payload that cannot be parsed degrades to zero statements
// rather than failing the surrounding graph build.
func ParsePayload(p Payload) (statements []Statement) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered while parsing tool payload", "panic", r)
			statements = nil
		}
	}()

	switch p.kind {
	case payloadText:
		return ExtractStatements(p.text)
	case payloadStructured:
		for _, block := range p.blocks {
			if block.Type != "text" {
				continue
			}
			statements = append(statements, ExtractStatements(block.Text)...)
		}
		return statements
	}

	return nil
}
