package graph

import (
	"testing"
)

func TestRender(t *testing.T) {
	g := NewGraph()

	pentagon := g.AddNode("geoint:pentagon")
	pentagon.Label = "The Pentagon"
	pentagon.Type = "Facility"
	pentagon.Properties = map[string]string{
		"geoint:state": `"Virginia"`,
		"geoint:city":  `"Arlington"`,
	}

	virginia := g.AddNode("geoint:virginia")
	virginia.Label = "Virginia"
	virginia.Type = "Location"

	g.AddNode("geoint:mystery")

	g.SetEdge("geoint:pentagon", "geoint:virginia", "geoint:state", "in state")
	g.SetEdge("geoint:pentagon", "geoint:mystery", "geoint:near", "")

	nodes, edges := Render(g)

	if len(nodes) != 3 || len(edges) != 2 {
		t.Fatalf("got %d nodes, %d edges", len(nodes), len(edges))
	}

	if nodes[0].Color != "#FF6B6B" || nodes[0].Size != 25 {
		t.Fatalf("facility styling = %s/%d", nodes[0].Color, nodes[0].Size)
	}
	if nodes[1].Color != "#4ECDC4" || nodes[1].Size != 20 {
		t.Fatalf("location styling = %s/%d", nodes[1].Color, nodes[1].Size)
	}
	// untyped nodes fall back to the Unknown styling
	if nodes[2].Color != "#DDA0DD" || nodes[2].Size != 20 {
		t.Fatalf("unknown styling = %s/%d", nodes[2].Color, nodes[2].Size)
	}

	wantTitle := "Type: Facility\nCity: Arlington\nState: Virginia"
	if nodes[0].Title != wantTitle {
		t.Fatalf("tooltip = %q, want %q", nodes[0].Title, wantTitle)
	}

	if edges[0].Label != "in state" || edges[0].Color != "#888888" || edges[0].Width != 2 {
		t.Fatalf("edge = %+v", edges[0])
	}
	// an empty display label falls back to the raw predicate
	if edges[1].Label != "geoint:near" {
		t.Fatalf("edge label fallback = %q", edges[1].Label)
	}
}

func TestNodeTooltipSkipsReservedPredicates(t *testing.T) {
	node := &Node{
		ID:    "geoint:x",
		Label: "X",
		Type:  "Unknown",
		Properties: map[string]string{
			"rdf:type":     "geoint:Facility",
			"rdfs:label":   `"X"`,
			"geoint:state": `"Maryland"`,
		},
	}

	got := nodeTooltip(node)
	want := "Type: Unknown\nState: Maryland"
	if got != want {
		t.Fatalf("tooltip = %q, want %q", got, want)
	}
}

func TestDefaultVisConfig(t *testing.T) {
	cfg := DefaultVisConfig(500, true)

	if cfg.Width != 750 || cfg.Height != 500 {
		t.Fatalf("dimensions = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Directed || cfg.Hierarchical || !cfg.Physics {
		t.Fatalf("flags = %+v", cfg)
	}
	if cfg.Node.LabelProperty != "label" || cfg.Edge.LabelProperty != "label" {
		t.Fatalf("label properties = %+v", cfg)
	}
}
