package enrich

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPost_UnmarshalPreservesUnknownFields(t *testing.T) {
	t.Parallel()

	in := `{"text": "hello", "engagement": 42, "author": {"name": "Dee"}}`
	var p Post
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Text != "hello" {
		t.Fatalf("Text=%q", p.Text)
	}
	if len(p.Extra) != 2 {
		t.Fatalf("Extra=%v, want 2 preserved fields", p.Extra)
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var round map[string]any
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("round unmarshal: %v", err)
	}
	if round["engagement"] != float64(42) {
		t.Fatalf("engagement=%v", round["engagement"])
	}
	if round["author"].(map[string]any)["name"] != "Dee" {
		t.Fatalf("author=%v", round["author"])
	}
	// Metadata fields are always present on output.
	for _, key := range []string{"text", "line_count", "language", "tags"} {
		if _, ok := round[key]; !ok {
			t.Fatalf("missing %q in output", key)
		}
	}
}

func TestPost_UnmarshalRequiresText(t *testing.T) {
	t.Parallel()

	var p Post
	err := json.Unmarshal([]byte(`{"author": "x"}`), &p)
	if err == nil || !strings.Contains(err.Error(), `"text"`) {
		t.Fatalf("err=%v, want missing text field error", err)
	}
}

func TestPost_RoundTripsEnrichedOutput(t *testing.T) {
	t.Parallel()

	in := `{"text": "t", "line_count": 2, "language": "English", "tags": ["Motivation"], "id": 1}`
	var p Post
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.LineCount != 2 || p.Language != "English" || len(p.Tags) != 1 {
		t.Fatalf("got %+v", p)
	}
	if len(p.Extra) != 1 {
		t.Fatalf("Extra=%v, metadata keys must not be duplicated there", p.Extra)
	}
}
