package graph

import (
	"regexp"
	"strings"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"
)

// queryEntityPatterns recognizes known place and facility references in a
// lowercased user query. Order is fixed so the extracted entity list is
// reproducible.
var queryEntityPatterns = []struct {
	re     *regexp.Regexp
	entity string
}{
	{regexp.MustCompile(`\b(?:washington\s*dc?|district\s*of\s*columbia)\b`), "Washington DC"},
	{regexp.MustCompile(`\bvirginia\b`), "Virginia"},
	{regexp.MustCompile(`\bmaryland\b`), "Maryland"},
	{regexp.MustCompile(`\bpentagon\b`), "Pentagon"},
	{regexp.MustCompile(`\bwhite\s*house\b`), "White House"},
	{regexp.MustCompile(`\bandrews\b`), "Joint Base Andrews"},
	{regexp.MustCompile(`\bquantico\b`), "Quantico"},
	{regexp.MustCompile(`\bdca\b`), "DCA Airport"},
	{regexp.MustCompile(`\bdulles\b`), "Dulles"},
	{regexp.MustCompile(`\bbwi\b`), "BWI"},
	{regexp.MustCompile(`\bnorfolk\b`), "Norfolk"},
	{regexp.MustCompile(`\bcapitol\b`), "Capitol"},
	{regexp.MustCompile(`\bmilitary\s*base`), "Military Base"},
	{regexp.MustCompile(`\bairport`), "Airport"},
	{regexp.MustCompile(`\bgovernment\s*building`), "Government Building"},
}

// QueryContext captures what one user turn contributed to the graph:
// the query, the entities recognized in it, and the statements that
// survived relevance filtering. It lives for a single turn.
type QueryContext struct {
	UserQuery          string             `json:"user_query"`
	QueryEntities      []string           `json:"query_entities"`
	RelevantStatements []triple.Statement `json:"relevant_statements"`
}

// ExtractQueryEntities returns the known entity names mentioned in the
// query, in pattern-table order.
func ExtractQueryEntities(query string) []string {
	lower := strings.ToLower(query)
	var entities []string
	for _, p := range queryEntityPatterns {
		if p.re.MatchString(lower) {
			entities = append(entities, p.entity)
		}
	}
	return entities
}

// FilterRelevant narrows a statement list to those touching the given
// entities plus their one-hop neighborhood. With no entities the full
// list passes through unchanged, so an unrecognized query never hides
// data. The first pass keeps statements whose subject or object mentions
// an entity name (space or underscore form, case-insensitive) and records
// the identifiers they touch; the second pass adds statements adjacent to
// those identifiers. Expansion runs once against the original list, not
// to a fixpoint.
func FilterRelevant(statements []triple.Statement, entities []string) []triple.Statement {
	if len(entities) == 0 {
		return statements
	}

	var relevant []triple.Statement
	kept := make(map[triple.Statement]struct{})
	identifiers := make(map[string]struct{})

	for _, s := range statements {
		for _, entity := range entities {
			if !mentionsEntity(s, entity) {
				continue
			}
			relevant = append(relevant, s)
			kept[s] = struct{}{}
			identifiers[s.Subject] = struct{}{}
			identifiers[s.Object] = struct{}{}
			break
		}
	}

	for _, s := range statements {
		if _, ok := kept[s]; ok {
			continue
		}
		_, subjHit := identifiers[s.Subject]
		_, objHit := identifiers[s.Object]
		if subjHit || objHit {
			relevant = append(relevant, s)
			kept[s] = struct{}{}
		}
	}

	return relevant
}

// ExtractQueryContext runs entity recognition and relevance filtering for
// one user turn over the already-extracted statement list.
func ExtractQueryContext(userQuery string, statements []triple.Statement) QueryContext {
	entities := ExtractQueryEntities(userQuery)
	return QueryContext{
		UserQuery:          userQuery,
		QueryEntities:      entities,
		RelevantStatements: FilterRelevant(statements, entities),
	}
}

func mentionsEntity(s triple.Statement, entity string) bool {
	lowerEntity := strings.ToLower(entity)
	underscored := strings.ReplaceAll(lowerEntity, " ", "_")
	subject := strings.ToLower(s.Subject)
	object := strings.ToLower(s.Object)

	return strings.Contains(subject, lowerEntity) ||
		strings.Contains(object, lowerEntity) ||
		strings.Contains(subject, underscored) ||
		strings.Contains(object, underscored)
}
