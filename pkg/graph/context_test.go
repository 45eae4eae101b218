package graph

import (
	"reflect"
	"testing"

	"github.com/vAirpower/aws-strands-mcp-knowledge-graph/pkg/triple"
)

func TestExtractQueryEntities(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "pattern table order wins over query order",
			query: "What facilities are near the Pentagon in Virginia?",
			want:  []string{"Virginia", "Pentagon"},
		},
		{
			name:  "military bases near dc",
			query: "Show me military bases near Washington DC",
			want:  []string{"Washington DC", "Military Base"},
		},
		{
			name:  "district of columbia alias",
			query: "anything in the District of Columbia?",
			want:  []string{"Washington DC"},
		},
		{
			name:  "airport plural",
			query: "list the airports",
			want:  []string{"Airport"},
		},
		{
			name:  "no known entities",
			query: "tell me something interesting",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractQueryEntities(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractQueryEntities(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterRelevant(t *testing.T) {
	s1 := triple.Statement{Subject: "geoint:pentagon", Predicate: "geoint:city", Object: "geoint:arlington"}
	s2 := triple.Statement{Subject: "geoint:arlington", Predicate: "rdf:type", Object: "geoint:Location"}
	s3 := triple.Statement{Subject: "geoint:bwi_airport", Predicate: "geoint:state", Object: "geoint:maryland"}
	statements := []triple.Statement{s1, s2, s3}

	t.Run("direct match plus one-hop neighborhood", func(t *testing.T) {
		got := FilterRelevant(statements, []string{"Pentagon"})
		want := []triple.Statement{s1, s2}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("multi-word entity matches underscore form", func(t *testing.T) {
		wh := triple.Statement{Subject: "geoint:white_house", Predicate: "rdf:type", Object: "geoint:Facility"}
		got := FilterRelevant([]triple.Statement{wh, s3}, []string{"White House"})
		if len(got) != 1 || got[0] != wh {
			t.Fatalf("got %v, want [%v]", got, wh)
		}
	})

	t.Run("no entities passes everything through", func(t *testing.T) {
		got := FilterRelevant(statements, nil)
		if !reflect.DeepEqual(got, statements) {
			t.Fatalf("got %v, want all statements", got)
		}
	})
}

func TestExtractQueryContext(t *testing.T) {
	statements := []triple.Statement{
		{Subject: "geoint:pentagon", Predicate: "geoint:state", Object: `"Virginia"`},
		{Subject: "geoint:bwi_airport", Predicate: "geoint:state", Object: `"Maryland"`},
	}

	qc := ExtractQueryContext("where is the pentagon?", statements)

	if qc.UserQuery != "where is the pentagon?" {
		t.Fatalf("user query = %q", qc.UserQuery)
	}
	if !reflect.DeepEqual(qc.QueryEntities, []string{"Pentagon"}) {
		t.Fatalf("entities = %v", qc.QueryEntities)
	}
	if len(qc.RelevantStatements) != 1 || qc.RelevantStatements[0].Subject != "geoint:pentagon" {
		t.Fatalf("relevant = %v", qc.RelevantStatements)
	}
}
