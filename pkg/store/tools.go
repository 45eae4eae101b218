package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/ai"
	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/mcp"
)

// Argument shapes for the graph tools. The JSON schemas advertised to
// clients are generated from these structs.

type CountTriplesArgs struct{}

type GetClassesArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of classes to return,default=100"`
}

type GetPropertiesArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of properties to return,default=100"`
}

type SearchByTextArgs struct {
	Text  string `json:"text" jsonschema:"description=Text to search for"`
	Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum number of results to return,default=50"`
}

type GetSampleDataArgs struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Maximum number of triples to return,default=10"`
}

type GetFacilitiesNearArgs struct {
	Location     string `json:"location" jsonschema:"description=Location name (e.g. 'Washington DC' or 'Virginia')"`
	FacilityType string `json:"facility_type,omitempty" jsonschema:"description=Optional facility type filter"`
	Limit        int    `json:"limit,omitempty" jsonschema:"description=Maximum number of results,default=20"`
}

// Toolset exposes the graph tools over a TripleStore.
type Toolset struct {
	store *TripleStore
}

// NewToolset wraps the given store.
func NewToolset(s *TripleStore) *Toolset {
	return &Toolset{store: s}
}

// Definitions returns the advertised tool list.
func (t *Toolset) Definitions() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "count_triples",
			Description: "Count the total number of triples in the RDF store",
			InputSchema: ai.GenerateSchema(CountTriplesArgs{}),
		},
		{
			Name:        "get_classes",
			Description: "Get all classes (rdf:type) in the RDF store",
			InputSchema: ai.GenerateSchema(GetClassesArgs{}),
		},
		{
			Name:        "get_properties",
			Description: "Get all properties used in the RDF store",
			InputSchema: ai.GenerateSchema(GetPropertiesArgs{}),
		},
		{
			Name:        "search_by_text",
			Description: "Search for entities containing specific text",
			InputSchema: ai.GenerateSchema(SearchByTextArgs{}),
		},
		{
			Name:        "get_sample_data",
			Description: "Get a sample of data from the RDF store",
			InputSchema: ai.GenerateSchema(GetSampleDataArgs{}),
		},
		{
			Name:        "get_facilities_near",
			Description: "Get facilities near a specific location",
			InputSchema: ai.GenerateSchema(GetFacilitiesNearArgs{}),
		},
	}
}

// Has reports whether a tool with the given name exists.
func (t *Toolset) Has(name string) bool {
	for _, tool := range t.Definitions() {
		if tool.Name == name {
			return true
		}
	}
	return false
}

// Call executes the named tool. Unknown names return an error so the
// transport layer can answer 404; tool-level failures are folded into an
// error result instead, mirroring how remote tool servers report them.
func (t *Toolset) Call(name string, args map[string]any) (*mcp.ToolResult, error) {
	var (
		text string
		err  error
	)

	switch name {
	case "count_triples":
		text = t.countTriples()
	case "get_classes":
		text, err = callWith(args, t.getClasses)
	case "get_properties":
		text, err = callWith(args, t.getProperties)
	case "search_by_text":
		text, err = callWith(args, t.searchByText)
	case "get_sample_data":
		text, err = callWith(args, t.getSampleData)
	case "get_facilities_near":
		text, err = callWith(args, t.getFacilitiesNear)
	default:
		return nil, fmt.Errorf("tool '%s' not found", name)
	}

	if err != nil {
		result := mcp.ErrorResult(fmt.Sprintf("Error executing tool '%s': %s", name, err))
		return &result, nil
	}
	result := mcp.TextResult(text)
	return &result, nil
}

// callWith decodes the raw argument map into the handler's typed
// argument struct before invoking it.
func callWith[T any](args map[string]any, fn func(T) (string, error)) (string, error) {
	var typed T
	if len(args) > 0 {
		raw, err := json.Marshal(args)
		if err != nil {
			return "", err
		}
		if err := json.Unmarshal(raw, &typed); err != nil {
			return "", fmt.Errorf("invalid arguments: %w", err)
		}
	}
	return fn(typed)
}

func (t *Toolset) countTriples() string {
	return fmt.Sprintf("Total triples in RDF store: %d", t.store.Len())
}

func (t *Toolset) getClasses(args GetClassesArgs) (string, error) {
	if args.Limit <= 0 {
		args.Limit = 100
	}

	classes := t.store.Classes(args.Limit)
	if len(classes) == 0 {
		return "No classes found", nil
	}

	var b strings.Builder
	b.WriteString("Classes in RDF store:\n\n")
	for _, c := range classes {
		fmt.Fprintf(&b, "• %s (%d instances)\n", c.URI, c.Count)
	}
	return b.String(), nil
}

func (t *Toolset) getProperties(args GetPropertiesArgs) (string, error) {
	if args.Limit <= 0 {
		args.Limit = 100
	}

	properties := t.store.Properties(args.Limit)
	if len(properties) == 0 {
		return "No properties found", nil
	}

	var b strings.Builder
	b.WriteString("Properties in RDF store:\n\n")
	for _, p := range properties {
		fmt.Fprintf(&b, "• %s (used %d times)\n", p.URI, p.Count)
	}
	return b.String(), nil
}

func (t *Toolset) searchByText(args SearchByTextArgs) (string, error) {
	if args.Text == "" {
		return "", fmt.Errorf("search text cannot be empty")
	}
	if args.Limit <= 0 {
		args.Limit = 50
	}

	results := t.store.SearchByText(args.Text, args.Limit)
	if len(results) == 0 {
		return fmt.Sprintf("No results found for '%s'", args.Text), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for '%s' (%d found):\n\n", args.Text, len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "• %s → %s → %s\n", r.Subject, r.Predicate, r.Object)
	}
	return b.String(), nil
}

func (t *Toolset) getSampleData(args GetSampleDataArgs) (string, error) {
	if args.Limit <= 0 {
		args.Limit = 10
	}

	results := t.store.Sample(args.Limit)
	if len(results) == 0 {
		return "No sample data available", nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Sample data from RDF store (%d triples):\n\n", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "• %s → %s → %s\n", r.Subject, r.Predicate, r.Object)
	}
	return b.String(), nil
}

func (t *Toolset) getFacilitiesNear(args GetFacilitiesNearArgs) (string, error) {
	if args.Location == "" {
		return "", fmt.Errorf("location cannot be empty")
	}
	if args.Limit <= 0 {
		args.Limit = 20
	}

	matches := t.store.FacilitiesNear(args.Location, args.FacilityType, args.Limit)
	if len(matches) == 0 {
		return fmt.Sprintf("No facilities found near '%s'", args.Location), nil
	}

	var b strings.Builder
	if args.FacilityType != "" {
		fmt.Fprintf(&b, "Facilities of type '%s' near '%s':\n\n", args.FacilityType, args.Location)
	} else {
		fmt.Fprintf(&b, "Facilities near '%s':\n\n", args.Location)
	}
	for _, m := range matches {
		fmt.Fprintf(&b, "📍 **%s**\n", m.Name)
		fmt.Fprintf(&b, "   Type: %s\n", m.Type)
		fmt.Fprintf(&b, "   Location: %s, %s\n", m.City, m.State)
		fmt.Fprintf(&b, "   Coordinates: %s, %s\n\n", m.Lat, m.Lon)
	}
	return b.String(), nil
}
