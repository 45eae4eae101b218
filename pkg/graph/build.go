package graph

import (
	"strings"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"
)

// predicateLabels overrides the display rendering for common predicates.
var predicateLabels = map[string]string{
	"type":         "is a",
	"label":        "named",
	"facilityType": "type",
	"state":        "in state",
	"city":         "in city",
	"lat":          "latitude",
	"long":         "longitude",
}

// BuildGraph folds an ordered statement list into a graph. Duplicate
// statements collapse, later statements overwrite the edge predicate for
// an already-connected pair, and an enrichment pass derives each subject's
// label, type and property map. An empty statement list yields an empty
// graph.
func BuildGraph(statements []triple.Statement) *Graph {
	g := NewGraph()

	for _, s := range statements {
		g.AddNode(s.Subject)
		g.AddNode(s.Object)
		g.SetEdge(s.Subject, s.Object, s.Predicate, PredicateLabel(s.Predicate))
	}

	enrichNodes(g, statements)

	return g
}

type nodeAttributes struct {
	label      string
	nodeType   string
	properties map[string]string
}

// enrichNodes runs the attribute accumulation pass: rdf:type sets the
// node type, a later facilityType statement overrides it with the concrete
// category, rdfs:label sets the display label, and every other predicate
// lands in the property map, overwriting on repeats.
func enrichNodes(g *Graph, statements []triple.Statement) {
	accumulated := make(map[string]*nodeAttributes)
	var order []string

	for _, s := range statements {
		attrs, ok := accumulated[s.Subject]
		if !ok {
			attrs = &nodeAttributes{
				label:      DeriveLabel(s.Subject),
				nodeType:   "Unknown",
				properties: map[string]string{},
			}
			accumulated[s.Subject] = attrs
			order = append(order, s.Subject)
		}

		switch s.Predicate {
		case "rdf:type":
			attrs.nodeType = DeriveLabel(s.Object)
		case "rdfs:label":
			attrs.label = strings.Trim(s.Object, `"`)
		case "geoint:facilityType":
			// refines the generic Facility type so category styling applies
			attrs.nodeType = strings.Trim(s.Object, `"`)
			attrs.properties[s.Predicate] = s.Object
		default:
			attrs.properties[s.Predicate] = s.Object
		}
	}

	for _, subject := range order {
		node, ok := g.Node(subject)
		if !ok {
			continue
		}
		attrs := accumulated[subject]
		node.Label = attrs.label
		node.Type = attrs.nodeType
		node.Properties = attrs.properties
	}
}

// DeriveLabel turns an identifier into a human-readable label: the local
// name after the namespace prefix, underscores replaced by spaces, title
// cased. Identifiers without a prefix pass through unchanged.
func DeriveLabel(identifier string) string {
	if _, local, ok := strings.Cut(identifier, ":"); ok {
		return titleCase(strings.ReplaceAll(local, "_", " "))
	}
	return identifier
}

// PredicateLabel renders a predicate for display, preferring the curated
// overrides and falling back to the title-cased local name.
func PredicateLabel(predicate string) string {
	label := predicate
	if _, local, ok := strings.Cut(predicate, ":"); ok {
		label = local
	}
	if override, ok := predicateLabels[label]; ok {
		return override
	}
	return titleCase(strings.ReplaceAll(label, "_", " "))
}

// titleCase uppercases the first letter of every alphabetic run and
// lowercases the rest, leaving digits and punctuation alone.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
		case isLetter:
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}
