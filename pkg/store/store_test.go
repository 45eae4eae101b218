package store

import (
	"strings"
	"testing"
)

func seededStore(t *testing.T) *TripleStore {
	t.Helper()
	s := NewTripleStore()
	if n := s.LoadSampleData(); n != 10 {
		t.Fatalf("LoadSampleData() = %d facilities, want 10", n)
	}
	return s
}

func TestLoadSampleData(t *testing.T) {
	s := seededStore(t)
	if s.Len() != 80 {
		t.Fatalf("Len() = %d, want 80", s.Len())
	}
}

func TestClasses(t *testing.T) {
	s := seededStore(t)

	classes := s.Classes(100)
	if len(classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(classes))
	}
	if classes[0].URI != GeointNS+"Facility" || classes[0].Count != 10 {
		t.Fatalf("got %+v", classes[0])
	}
}

func TestProperties(t *testing.T) {
	s := seededStore(t)

	properties := s.Properties(100)
	if len(properties) != 8 {
		t.Fatalf("expected 8 properties, got %d", len(properties))
	}
	// equal counts keep first-seen order
	if properties[0].URI != RDFType || properties[1].URI != RDFSLabel {
		t.Fatalf("unexpected order: %v", properties[:2])
	}
	for _, p := range properties {
		if p.Count != 10 {
			t.Fatalf("property %s count = %d, want 10", p.URI, p.Count)
		}
	}

	if limited := s.Properties(3); len(limited) != 3 {
		t.Fatalf("limit ignored, got %d", len(limited))
	}
}

func TestSearchByText(t *testing.T) {
	s := seededStore(t)

	t.Run("case-insensitive object match", func(t *testing.T) {
		results := s.SearchByText("PENTAGON", 50)
		if len(results) != 2 {
			t.Fatalf("expected label and facilityId matches, got %d", len(results))
		}
		if results[0].Object != "The Pentagon" || results[1].Object != "pentagon" {
			t.Fatalf("got %v", results)
		}
	})

	t.Run("limit caps results", func(t *testing.T) {
		if results := s.SearchByText("Virginia", 3); len(results) != 3 {
			t.Fatalf("expected 3, got %d", len(results))
		}
	})

	t.Run("no match", func(t *testing.T) {
		if results := s.SearchByText("atlantis", 50); results != nil {
			t.Fatalf("expected nil, got %v", results)
		}
	})
}

func TestFacilitiesNear(t *testing.T) {
	s := seededStore(t)

	t.Run("state match ordered by name", func(t *testing.T) {
		matches := s.FacilitiesNear("Virginia", "", 20)
		wantNames := []string{
			"Fort Belvoir",
			"Marine Corps Base Quantico",
			"Naval Station Norfolk",
			"Ronald Reagan Washington National Airport",
			"The Pentagon",
			"Washington Dulles International Airport",
		}
		if len(matches) != len(wantNames) {
			t.Fatalf("expected %d matches, got %d", len(wantNames), len(matches))
		}
		for i, want := range wantNames {
			if matches[i].Name != want {
				t.Fatalf("matches[%d].Name = %q, want %q", i, matches[i].Name, want)
			}
		}
	})

	t.Run("type filter", func(t *testing.T) {
		matches := s.FacilitiesNear("Virginia", "Airport", 20)
		if len(matches) != 2 {
			t.Fatalf("expected 2 airports, got %d", len(matches))
		}
		if matches[0].Name != "Ronald Reagan Washington National Airport" {
			t.Fatalf("got %q", matches[0].Name)
		}
	})

	t.Run("city and state both searched", func(t *testing.T) {
		matches := s.FacilitiesNear("Washington DC", "", 20)
		if len(matches) != 2 {
			t.Fatalf("expected 2, got %d", len(matches))
		}
		if matches[0].Name != "United States Capitol" || matches[1].Name != "White House" {
			t.Fatalf("got %v", matches)
		}
	})

	t.Run("limit", func(t *testing.T) {
		if matches := s.FacilitiesNear("Virginia", "", 1); len(matches) != 1 {
			t.Fatalf("expected 1, got %d", len(matches))
		}
	})

	t.Run("unknown location", func(t *testing.T) {
		if matches := s.FacilitiesNear("Atlantis", "", 20); matches != nil {
			t.Fatalf("expected nil, got %v", matches)
		}
	})
}

func TestToolsetCall(t *testing.T) {
	tools := NewToolset(seededStore(t))

	t.Run("count_triples", func(t *testing.T) {
		result, err := tools.Call("count_triples", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := result.JoinText(); got != "Total triples in RDF store: 80" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("get_classes", func(t *testing.T) {
		result, err := tools.Call("get_classes", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Classes in RDF store:\n\n• http://example.org/geoint/Facility (10 instances)\n"
		if got := result.JoinText(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("get_properties", func(t *testing.T) {
		result, err := tools.Call("get_properties", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := result.JoinText()
		if !strings.HasPrefix(got, "Properties in RDF store:\n\n") {
			t.Fatalf("got %q", got)
		}
		if !strings.Contains(got, "• "+RDFType+" (used 10 times)\n") {
			t.Fatalf("missing rdf:type line in %q", got)
		}
	})

	t.Run("get_sample_data with limit", func(t *testing.T) {
		result, err := tools.Call("get_sample_data", map[string]any{"limit": 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Sample data from RDF store (2 triples):\n\n" +
			"• http://example.org/geoint/pentagon → http://www.w3.org/1999/02/22-rdf-syntax-ns#type → http://example.org/geoint/Facility\n" +
			"• http://example.org/geoint/pentagon → http://www.w3.org/2000/01/rdf-schema#label → The Pentagon\n"
		if got := result.JoinText(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("search_by_text", func(t *testing.T) {
		result, err := tools.Call("search_by_text", map[string]any{"text": "Quantico"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := result.JoinText()
		if !strings.HasPrefix(got, "Search results for 'Quantico' (3 found):\n\n") {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("search_by_text missing text becomes error result", func(t *testing.T) {
		result, err := tools.Call("search_by_text", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error result")
		}
		want := "Error executing tool 'search_by_text': search text cannot be empty"
		if got := result.JoinText(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("get_facilities_near", func(t *testing.T) {
		result, err := tools.Call("get_facilities_near", map[string]any{
			"location":      "Virginia",
			"facility_type": "Government Building",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Facilities of type 'Government Building' near 'Virginia':\n\n" +
			"📍 **The Pentagon**\n" +
			"   Type: Government Building\n" +
			"   Location: Arlington, Virginia\n" +
			"   Coordinates: 38.8719, -77.0563\n\n"
		if got := result.JoinText(); got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	})

	t.Run("get_facilities_near no matches", func(t *testing.T) {
		result, err := tools.Call("get_facilities_near", map[string]any{"location": "Atlantis"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := result.JoinText(); got != "No facilities found near 'Atlantis'" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("unknown tool is a hard error", func(t *testing.T) {
		result, err := tools.Call("launch_satellite", nil)
		if err == nil {
			t.Fatal("expected error")
		}
		if result != nil {
			t.Fatalf("expected nil result, got %v", result)
		}
	})
}

func TestToolsetDefinitions(t *testing.T) {
	tools := NewToolset(NewTripleStore())

	defs := tools.Definitions()
	if len(defs) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(defs))
	}
	for _, def := range defs {
		if def.Name == "" || def.Description == "" || def.InputSchema == nil {
			t.Fatalf("incomplete definition: %+v", def)
		}
		if !tools.Has(def.Name) {
			t.Fatalf("Has(%q) = false", def.Name)
		}
	}
	if tools.Has("launch_satellite") {
		t.Fatal("Has() accepted an unknown tool")
	}
}
