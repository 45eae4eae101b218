package triple

import (
	"reflect"
	"testing"
)

func TestExtractTable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Statement
	}{
		{
			name: "subject predicate object table",
			text: "Query Results (2 rows):\n\n" +
				"subject | predicate | object\n" +
				"--------------------------------\n" +
				"http://example.org/geoint/white_house | rdf:type | geoint:Facility\n" +
				`geoint:white_house | rdfs:label | "White House"` + "\n",
			want: []Statement{
				{Subject: "geoint:white_house", Predicate: "rdf:type", Object: "geoint:Facility"},
				{Subject: "geoint:white_house", Predicate: "rdfs:label", Object: "White House"},
			},
		},
		{
			name: "header without triple columns yields nothing",
			text: "name | type\n" +
				"--------------\n" +
				"Eastern Compound | Building\n",
			want: nil,
		},
		{
			name: "rows before a header are ignored",
			text: "geoint:a | geoint:p | geoint:b\n",
			want: nil,
		},
		{
			name: "short rows skipped",
			text: "subject | predicate | object\n" +
				"geoint:a | geoint:p\n" +
				"geoint:a | geoint:p | geoint:b\n",
			want: []Statement{
				{Subject: "geoint:a", Predicate: "geoint:p", Object: "geoint:b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractTable(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("extractTable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractFacilityBlocks(t *testing.T) {
	text := "Facilities near 'Arlington':\n\n" +
		"📍 **The Pentagon**\n" +
		"   Type: Government Building\n" +
		"   Location: Arlington, Virginia\n" +
		"   Coordinates: 38.8719, -77.0563\n\n" +
		"📍 **Ronald Reagan Washington National Airport**\n" +
		"   Type: Airport\n" +
		"   Location: Arlington, Virginia\n" +
		"   Coordinates: 38.8512, -77.0402\n\n"

	got := extractFacilityBlocks(text)

	wantFirst := []Statement{
		{Subject: "geoint:the_pentagon", Predicate: "rdf:type", Object: "geoint:Facility"},
		{Subject: "geoint:the_pentagon", Predicate: "rdfs:label", Object: `"The Pentagon"`},
		{Subject: "geoint:the_pentagon", Predicate: "geoint:facilityType", Object: `"Government Building"`},
		{Subject: "geoint:the_pentagon", Predicate: "geoint:city", Object: `"Arlington"`},
		{Subject: "geoint:the_pentagon", Predicate: "geoint:state", Object: `"Virginia"`},
		{Subject: "geoint:the_pentagon", Predicate: "geo:lat", Object: "38.8719"},
		{Subject: "geoint:the_pentagon", Predicate: "geo:long", Object: "-77.0563"},
	}

	if len(got) != 14 {
		t.Fatalf("expected 14 statements for two full blocks, got %d", len(got))
	}
	if !reflect.DeepEqual(got[:7], wantFirst) {
		t.Fatalf("first block = %v, want %v", got[:7], wantFirst)
	}
	if got[7].Subject != "geoint:ronald_reagan_washington_national_airport" {
		t.Fatalf("second block subject = %q", got[7].Subject)
	}
}

func TestExtractFacilityBlocksPartial(t *testing.T) {
	// Location without a comma and missing coordinates degrade to the
	// statements that could be read, never an error.
	text := "📍 **Fort Belvoir**\n   Type: Military Base\n   Location: Virginia\n"

	got := extractFacilityBlocks(text)
	want := []Statement{
		{Subject: "geoint:fort_belvoir", Predicate: "rdf:type", Object: "geoint:Facility"},
		{Subject: "geoint:fort_belvoir", Predicate: "rdfs:label", Object: `"Fort Belvoir"`},
		{Subject: "geoint:fort_belvoir", Predicate: "geoint:facilityType", Object: `"Military Base"`},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractArrows(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []Statement
	}{
		{
			name: "bulleted triple",
			text: `• geoint:pentagon → geoint:state → "Virginia"`,
			want: []Statement{
				{Subject: "geoint:pentagon", Predicate: "geoint:state", Object: "Virginia"},
			},
		},
		{
			name: "two segments discarded",
			text: "geoint:pentagon → geoint:state",
			want: nil,
		},
		{
			name: "four segments discarded",
			text: "a → b → c → d",
			want: nil,
		},
		{
			name: "full URIs compacted",
			text: "http://example.org/geoint/pentagon → http://www.w3.org/1999/02/22-rdf-syntax-ns#type → http://example.org/geoint/Facility",
			want: []Statement{
				{Subject: "geoint:pentagon", Predicate: "rdf:type", Object: "geoint:Facility"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractArrows(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("extractArrows() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBracketArrows(t *testing.T) {
	text := "[Zulu Station] ----locatedIn----> [Sector Seven]\n" +
		"[----hasStatus----> [Active]\n" +
		"[Echo Depot] ----locatedIn----> [Sector Nine]\n" +
		"[----hasStatus----> [Standby]\n"

	got := extractBracketArrows(text)
	want := []Statement{
		{Subject: "geoint:zulu_station", Predicate: "geoint:locatedIn", Object: "geoint:sector_seven"},
		{Subject: "geoint:echo_depot", Predicate: "geoint:locatedIn", Object: "geoint:sector_nine"},
		{Subject: "geoint:zulu_station", Predicate: "geoint:hasStatus", Object: `"Active"`},
		{Subject: "geoint:echo_depot", Predicate: "geoint:hasStatus", Object: `"Standby"`},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// A property continuation before any full relationship line has no
// entity to attach to and is dropped.
func TestExtractBracketArrowsOrphanProperty(t *testing.T) {
	got := extractBracketArrows("[----hasStatus----> [Active]\n")
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestExtractEntityMentions(t *testing.T) {
	got := extractEntityMentions("The PENTAGON sits in Arlington, Virginia.")
	want := []Statement{
		{Subject: "geoint:pentagon", Predicate: "rdf:type", Object: "geoint:Facility"},
		{Subject: "geoint:pentagon", Predicate: "rdfs:label", Object: `"Pentagon"`},
		{Subject: "geoint:virginia", Predicate: "rdf:type", Object: "geoint:Location"},
		{Subject: "geoint:virginia", Predicate: "rdfs:label", Object: `"Virginia"`},
		{Subject: "geoint:arlington", Predicate: "rdf:type", Object: "geoint:Location"},
		{Subject: "geoint:arlington", Predicate: "rdfs:label", Object: `"Arlington"`},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExtractStatementsCombined(t *testing.T) {
	// One text that matches several conventions at once; every extractor
	// contributes independently.
	text := "📍 **Fort Belvoir**\n" +
		"   Type: Military Base\n" +
		"• geoint:fort_belvoir → geoint:state → \"Virginia\"\n"

	got := ExtractStatements(text)

	// facility block (3) + arrow (1) + mentions of Fort Belvoir and
	// Virginia (4)
	if len(got) != 8 {
		t.Fatalf("expected 8 statements, got %d: %v", len(got), got)
	}
}

func TestDedupe(t *testing.T) {
	in := []Statement{
		{Subject: "a", Predicate: "p", Object: "b"},
		{Subject: "a", Predicate: "p", Object: "b"},
		{Subject: "b", Predicate: "p", Object: "c"},
		{Subject: "a", Predicate: "p", Object: "b"},
	}
	got := Dedupe(in)
	want := []Statement{
		{Subject: "a", Predicate: "p", Object: "b"},
		{Subject: "b", Predicate: "p", Object: "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
