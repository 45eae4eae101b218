package routes

import (
	"encoding/json"
	"net/http"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/graph"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"

	"github.com/labstack/echo/v4"
)

// PostGraphHandler runs the extraction pipeline over caller-supplied
// payloads and returns the rendered graph. Each payload may be a bare
// string or a {content: [...]} block list.
func PostGraphHandler(c echo.Context) error {
	type graphParams struct {
		Payloads []json.RawMessage `json:"payloads" validate:"required,min=1"`
		Query    string            `json:"query"`
		Height   int               `json:"height"`
		Physics  *bool             `json:"physics"`
	}

	type graphResponse struct {
		Nodes  []graph.VisNode `json:"nodes"`
		Edges  []graph.VisEdge `json:"edges"`
		Config graph.VisConfig `json:"config"`
	}

	params := new(graphParams)
	if err := c.Bind(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	payloads := make([]triple.Payload, 0, len(params.Payloads))
	for _, raw := range params.Payloads {
		payload, err := decodePayload(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid payload shape"})
		}
		payloads = append(payloads, payload)
	}

	ctx := c.Request().Context()
	statements := graph.ParsePayloads(ctx, payloads)

	if params.Query != "" {
		statements = graph.ExtractQueryContext(params.Query, statements).RelevantStatements
	}

	g := graph.BuildGraph(statements)
	nodes, edges := graph.Render(g)

	height := params.Height
	if height <= 0 {
		height = 500
	}
	physics := true
	if params.Physics != nil {
		physics = *params.Physics
	}

	return c.JSON(http.StatusOK, graphResponse{
		Nodes:  nodes,
		Edges:  edges,
		Config: graph.DefaultVisConfig(height, physics),
	})
}

func decodePayload(raw json.RawMessage) (triple.Payload, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return triple.TextPayload(text), nil
	}

	var structured struct {
		Content []triple.Block `json:"content"`
	}
	if err := json.Unmarshal(raw, &structured); err != nil {
		return triple.Payload{}, err
	}
	return triple.StructuredPayload(structured.Content...), nil
}
