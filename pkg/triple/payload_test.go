package triple

import (
	"reflect"
	"testing"
)

func TestParsePayloadText(t *testing.T) {
	p := TextPayload(`• geoint:pentagon → geoint:state → "Virginia"`)

	got := ParsePayload(p)
	if len(got) == 0 {
		t.Fatal("expected statements from text payload")
	}
	want := Statement{Subject: "geoint:pentagon", Predicate: "geoint:state", Object: "Virginia"}
	if got[0] != want {
		t.Fatalf("got %v, want %v", got[0], want)
	}
}

func TestParsePayloadStructured(t *testing.T) {
	p := StructuredPayload(
		Block{Type: "text", Text: "• geoint:a → geoint:p → geoint:b"},
		Block{Type: "image", Text: "• geoint:x → geoint:p → geoint:y"},
		Block{Type: "text", Text: "• geoint:b → geoint:p → geoint:c"},
	)

	got := ParsePayload(p)
	want := []Statement{
		{Subject: "geoint:a", Predicate: "geoint:p", Object: "geoint:b"},
		{Subject: "geoint:b", Predicate: "geoint:p", Object: "geoint:c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParsePayloadEmpty(t *testing.T) {
	if got := ParsePayload(TextPayload("")); got != nil {
		t.Fatalf("expected nil for empty text, got %v", got)
	}
	if got := ParsePayload(StructuredPayload()); got != nil {
		t.Fatalf("expected nil for no blocks, got %v", got)
	}
}
