package store

import (
	"sort"
	"strings"
)

// FacilityMatch is a fully-resolved facility row returned by FacilitiesNear.
type FacilityMatch struct {
	URI   string
	Name  string
	Type  string
	State string
	City  string
	Lat   string
	Lon   string
}

// FacilitiesNear returns facilities whose state, city or name contains
// the given location, optionally filtered by facility type. Matching is
// case-insensitive substring, results are ordered by name.
func (s *TripleStore) FacilitiesNear(location, facilityType string, limit int) []FacilityMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var subjects []string
	seen := map[string]bool{}
	for _, t := range s.triples {
		if t.Predicate == RDFType && t.Object == GeointNS+"Facility" && !seen[t.Subject] {
			seen[t.Subject] = true
			subjects = append(subjects, t.Subject)
		}
	}

	loc := strings.ToLower(location)
	ftype := strings.ToLower(facilityType)

	var matches []FacilityMatch
	for _, subject := range subjects {
		props := s.subjectProperties(subject)
		m := FacilityMatch{
			URI:   subject,
			Name:  props[RDFSLabel],
			Type:  props[GeointNS+"facilityType"],
			State: props[GeointNS+"state"],
			City:  props[GeointNS+"city"],
			Lat:   props[GeoNS+"lat"],
			Lon:   props[GeoNS+"long"],
		}
		if m.Name == "" || m.Type == "" || m.State == "" || m.City == "" || m.Lat == "" || m.Lon == "" {
			continue
		}

		if !strings.Contains(strings.ToLower(m.State), loc) &&
			!strings.Contains(strings.ToLower(m.City), loc) &&
			!strings.Contains(strings.ToLower(m.Name), loc) {
			continue
		}
		if ftype != "" && !strings.Contains(strings.ToLower(m.Type), ftype) {
			continue
		}

		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Name < matches[j].Name
	})

	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}
