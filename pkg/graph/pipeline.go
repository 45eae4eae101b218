package graph

import (
	"context"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"

	"golang.org/x/sync/errgroup"
)

const parallelPayloads = 4

// ParsePayloads extracts statements from every payload. Extraction is
// pure per payload, so payloads run in parallel; results are merged in
// payload order afterwards to keep last-write-wins outcomes downstream
// deterministic.
func ParsePayloads(ctx context.Context, payloads []triple.Payload) []triple.Statement {
	results := make([][]triple.Statement, len(payloads))

	eg, _ := errgroup.WithContext(ctx)
	eg.SetLimit(parallelPayloads)
	for i, payload := range payloads {
		eg.Go(func() error {
			results[i] = triple.ParsePayload(payload)
			return nil
		})
	}
	// ParsePayload never returns an error; Wait only joins the goroutines.
	_ = eg.Wait()

	var statements []triple.Statement
	for _, r := range results {
		statements = append(statements, r...)
	}
	return statements
}

// BuildFromPayloads runs the full pipeline over tool-response payloads:
// parse each one, concatenate in order, fold into a graph.
func BuildFromPayloads(ctx context.Context, payloads []triple.Payload) *Graph {
	return BuildGraph(ParsePayloads(ctx, payloads))
}
