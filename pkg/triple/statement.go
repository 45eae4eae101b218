// Package triple reconstructs structured (subject, predicate, object)
// statements from the free-text responses produced by the GEOINT query
// tools. Tool output is plain prose, tables and ad-hoc relationship
// notations rather than typed data, so the package runs several
// independent pattern extractors over each text block and canonicalizes
// every mentioned entity to a stable identifier.
package triple

// Statement is a single subject-predicate-object fact. All three fields
// are opaque strings: either compact prefixed identifiers ("geoint:pentagon"),
// quoted literals ("\"Virginia\""), or bare values. Statements compare by
// value, so identical facts found by different extractors collapse when
// collected into a set.
type Statement struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    string `json:"object"`
}

// Dedupe returns the statements with exact duplicates removed, preserving
// first-occurrence order.
func Dedupe(statements []Statement) []Statement {
	seen := make(map[Statement]struct{}, len(statements))
	out := make([]Statement, 0, len(statements))
	for _, s := range statements {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
