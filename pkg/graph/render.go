package graph

import (
	"sort"
	"strings"
)

// NodeColors assigns a display color per semantic node type.
var NodeColors = map[string]string{
	"Facility":            "#FF6B6B",
	"Location":            "#4ECDC4",
	"Government Building": "#45B7D1",
	"Military Base":       "#96CEB4",
	"Airport":             "#FFEAA7",
	"Unknown":             "#DDA0DD",
}

// NodeSizes assigns a display size per semantic node type.
var NodeSizes = map[string]int{
	"Facility":            25,
	"Location":            20,
	"Government Building": 30,
	"Military Base":       28,
	"Airport":             26,
	"Unknown":             20,
}

// VisNode is a node in the force-directed renderer's format.
type VisNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Size  int    `json:"size"`
	Color string `json:"color"`
	Title string `json:"title"`
}

// VisEdge is an edge in the force-directed renderer's format.
type VisEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Color  string `json:"color"`
	Width  int    `json:"width"`
}

// VisLabelProperty tells the renderer which attribute to display.
type VisLabelProperty struct {
	LabelProperty string `json:"labelProperty"`
}

// VisConfig is the renderer configuration block.
type VisConfig struct {
	Width        int              `json:"width"`
	Height       int              `json:"height"`
	Directed     bool             `json:"directed"`
	Physics      bool             `json:"physics"`
	Hierarchical bool             `json:"hierarchical"`
	Node         VisLabelProperty `json:"node"`
	Edge         VisLabelProperty `json:"edge"`
}

// DefaultVisConfig returns the renderer configuration used by the demo.
func DefaultVisConfig(height int, physics bool) VisConfig {
	return VisConfig{
		Width:        750,
		Height:       height,
		Directed:     false,
		Physics:      physics,
		Hierarchical: false,
		Node:         VisLabelProperty{LabelProperty: "label"},
		Edge:         VisLabelProperty{LabelProperty: "label"},
	}
}

// Render converts the graph into the renderer's node and edge lists.
// Unrecognized node types fall back to the Unknown color and size.
func Render(g *Graph) ([]VisNode, []VisEdge) {
	nodes := make([]VisNode, 0, g.NodeCount())
	for _, node := range g.Nodes() {
		color, ok := NodeColors[node.Type]
		if !ok {
			color = NodeColors["Unknown"]
		}
		size, ok := NodeSizes[node.Type]
		if !ok {
			size = NodeSizes["Unknown"]
		}

		nodes = append(nodes, VisNode{
			ID:    node.ID,
			Label: node.Label,
			Size:  size,
			Color: color,
			Title: nodeTooltip(node),
		})
	}

	edges := make([]VisEdge, 0, g.EdgeCount())
	for _, edge := range g.Edges() {
		label := edge.Label
		if label == "" {
			label = edge.Predicate
		}
		edges = append(edges, VisEdge{
			Source: edge.Source,
			Target: edge.Target,
			Label:  label,
			Color:  "#888888",
			Width:  2,
		})
	}

	return nodes, edges
}

// nodeTooltip builds the hover text: the node type followed by its
// properties with cleaned-up names and quote-stripped values.
func nodeTooltip(node *Node) string {
	parts := []string{"Type: " + node.Type}

	for _, predicate := range sortedPropertyKeys(node.Properties) {
		if predicate == "rdf:type" || predicate == "rdfs:label" {
			continue
		}
		name := predicate
		if idx := strings.LastIndex(predicate, ":"); idx >= 0 {
			name = predicate[idx+1:]
		}
		name = titleCase(strings.ReplaceAll(name, "_", " "))
		value := strings.Trim(node.Properties[predicate], `"`)
		parts = append(parts, name+": "+value)
	}

	return strings.Join(parts, "\n")
}

func sortedPropertyKeys(properties map[string]string) []string {
	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
