// Package store implements the in-memory triple store behind the graph
// tool server. It holds full-URI subject/predicate/object triples and
// answers the handful of query shapes the tools need, without an external
// triple-store dependency.
package store

import (
	"sort"
	"strings"
	"sync"
)

// Well-known vocabulary URIs used by the seed data and queries.
const (
	GeointNS  = "http://example.org/geoint/"
	GeoNS     = "http://www.w3.org/2003/01/geo/wgs84_pos#"
	RDFType   = "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"
	RDFSLabel = "http://www.w3.org/2000/01/rdf-schema#label"
)

// Triple is a single fact with fully-qualified URIs on the entity
// positions and plain literals on literal objects.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// TripleStore is an append-only in-memory collection of triples.
// Iteration order is insertion order, which keeps tool output stable
// across identical runs.
type TripleStore struct {
	mu      sync.RWMutex
	triples []Triple
}

// NewTripleStore returns an empty store.
func NewTripleStore() *TripleStore {
	return &TripleStore{}
}

// Add appends a triple to the store.
func (s *TripleStore) Add(subject, predicate, object string) {
	s.mu.Lock()
	s.triples = append(s.triples, Triple{Subject: subject, Predicate: predicate, Object: object})
	s.mu.Unlock()
}

// Len returns the number of triples in the store.
func (s *TripleStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.triples)
}

// Sample returns up to limit triples in insertion order.
func (s *TripleStore) Sample(limit int) []Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.triples) {
		limit = len(s.triples)
	}
	out := make([]Triple, limit)
	copy(out, s.triples[:limit])
	return out
}

// Counted pairs a URI with the number of times it occurs.
type Counted struct {
	URI   string
	Count int
}

// Classes returns the distinct rdf:type objects with their instance
// counts, most frequent first. Ties keep first-seen order.
func (s *TripleStore) Classes(limit int) []Counted {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	order := []string{}
	for _, t := range s.triples {
		if t.Predicate != RDFType {
			continue
		}
		if _, seen := counts[t.Object]; !seen {
			order = append(order, t.Object)
		}
		counts[t.Object]++
	}

	return rankCounts(order, counts, limit)
}

// Properties returns the distinct predicates with their usage counts,
// most used first. Ties keep first-seen order.
func (s *TripleStore) Properties(limit int) []Counted {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	order := []string{}
	for _, t := range s.triples {
		if _, seen := counts[t.Predicate]; !seen {
			order = append(order, t.Predicate)
		}
		counts[t.Predicate]++
	}

	return rankCounts(order, counts, limit)
}

func rankCounts(order []string, counts map[string]int, limit int) []Counted {
	ranked := make([]Counted, 0, len(order))
	for _, uri := range order {
		ranked = append(ranked, Counted{URI: uri, Count: counts[uri]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// SearchByText returns triples whose object contains the given text,
// case-insensitive, up to limit.
func (s *TripleStore) SearchByText(text string, limit int) []Triple {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(text)
	var out []Triple
	for _, t := range s.triples {
		if !strings.Contains(strings.ToLower(t.Object), needle) {
			continue
		}
		out = append(out, t)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// subjectProperties collects all predicate→object pairs for a subject.
// Multi-valued predicates keep the last value, matching how the seed
// data is shaped (single value per predicate).
func (s *TripleStore) subjectProperties(subject string) map[string]string {
	props := map[string]string{}
	for _, t := range s.triples {
		if t.Subject == subject {
			props[t.Predicate] = t.Object
		}
	}
	return props
}
