// Package graph folds extracted statements into a renderable knowledge
// graph: one node per distinct identifier, one undirected edge per
// subject/object pair, plus an enrichment pass that derives display
// labels, semantic types and property maps from the statements a node
// participates in.
package graph

// Node is a graph node with its enriched display attributes.
type Node struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	Type       string            `json:"type"`
	Properties map[string]string `json:"properties"`
}

// Edge connects two nodes and carries the predicate that related them.
// The graph is simple: when several statements connect the same pair, the
// last one's predicate and label win.
type Edge struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Predicate string `json:"predicate"`
	Label     string `json:"label"`
}

type edgeKey struct {
	a, b string
}

// Graph is a simple undirected graph keyed by canonical identifier.
// Iteration order over nodes and edges is insertion order, so building
// from the same statement list always yields the same graph.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[edgeKey]*Edge
	edgeOrder []edgeKey
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[edgeKey]*Edge),
	}
}

// nodeKey maps an identifier or literal to its node identity. Literal
// values and entity identifiers currently share one namespace, so equal
// surface strings collide into the same node; routing every lookup
// through here keeps that decision in a single place.
func nodeKey(identifier string) string {
	return identifier
}

func unorderedKey(a, b string) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AddNode ensures a node exists for the identifier. Re-adding an existing
// node is a no-op. New nodes start with the identifier as their label and
// type Unknown until the enrichment pass replaces them.
func (g *Graph) AddNode(identifier string) *Node {
	key := nodeKey(identifier)
	if node, ok := g.nodes[key]; ok {
		return node
	}
	node := &Node{
		ID:         key,
		Label:      key,
		Type:       "Unknown",
		Properties: map[string]string{},
	}
	g.nodes[key] = node
	g.nodeOrder = append(g.nodeOrder, key)
	return node
}

// SetEdge upserts the edge between two identifiers. An existing edge keeps
// its original endpoints but takes the new predicate and label.
func (g *Graph) SetEdge(source, target, predicate, label string) {
	key := unorderedKey(nodeKey(source), nodeKey(target))
	if edge, ok := g.edges[key]; ok {
		edge.Predicate = predicate
		edge.Label = label
		return
	}
	g.edges[key] = &Edge{
		Source:    nodeKey(source),
		Target:    nodeKey(target),
		Predicate: predicate,
		Label:     label,
	}
	g.edgeOrder = append(g.edgeOrder, key)
}

// Node returns the node for an identifier, if present.
func (g *Graph) Node(identifier string) (*Node, bool) {
	node, ok := g.nodes[nodeKey(identifier)]
	return node, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodeOrder))
	for _, key := range g.nodeOrder {
		out = append(out, g.nodes[key])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, g.edges[key])
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
