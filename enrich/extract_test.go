package enrich

import (
	"context"
	"errors"
	"testing"
)

// completerFunc adapts a function to the Completer interface for tests.
type completerFunc func(ctx context.Context, p Prompt) (string, error)

func (f completerFunc) Complete(ctx context.Context, p Prompt) (string, error) {
	return f(ctx, p)
}

func TestParseMetadata_ValidReply(t *testing.T) {
	t.Parallel()

	m, err := parseMetadata(`{"line_count": 3, "language": "Hinglish", "tags": ["Motivation", "Job Search"]}`)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if m.LineCount != 3 {
		t.Fatalf("LineCount=%d, want 3", m.LineCount)
	}
	if m.Language != LanguageHinglish {
		t.Fatalf("Language=%q", m.Language)
	}
	if len(m.Tags) != 2 || m.Tags[0] != "Motivation" || m.Tags[1] != "Job Search" {
		t.Fatalf("Tags=%v", m.Tags)
	}
}

func TestParseMetadata_IgnoresExtraKeysAndWrapperText(t *testing.T) {
	t.Parallel()

	reply := "Here is the JSON you asked for:\n" +
		`{"line_count": 1, "language": "English", "tags": [], "confidence": 0.9}`
	m, err := parseMetadata(reply)
	if err != nil {
		t.Fatalf("parseMetadata: %v", err)
	}
	if m.LineCount != 1 || m.Language != LanguageEnglish || len(m.Tags) != 0 {
		t.Fatalf("got %+v", m)
	}
}

func TestParseMetadata_NonJSONReplyIsParseError(t *testing.T) {
	t.Parallel()

	_, err := parseMetadata("I'm sorry, I can't help with that.")
	var perr *MetadataParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err=%v, want *MetadataParseError", err)
	}
	if perr.Error() != "Context is too big, unable to process" {
		t.Fatalf("message=%q", perr.Error())
	}
	if perr.Unwrap() == nil {
		t.Fatalf("expected a wrapped cause")
	}
}

func TestParseMetadata_MalformedFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		reply string
		field string
	}{
		{"missing line_count", `{"language": "English", "tags": []}`, "line_count"},
		{"line_count not int", `{"line_count": "three", "language": "English", "tags": []}`, "line_count"},
		{"missing language", `{"line_count": 2, "tags": []}`, "language"},
		{"language out of enum", `{"line_count": 2, "language": "French", "tags": []}`, "language"},
		{"missing tags", `{"line_count": 2, "language": "English"}`, "tags"},
		{"tags not array", `{"line_count": 2, "language": "English", "tags": "Motivation"}`, "tags"},
	}
	for _, tc := range cases {
		_, err := parseMetadata(tc.reply)
		var merr *MalformedMetadataError
		if !errors.As(err, &merr) {
			t.Fatalf("%s: err=%v, want *MalformedMetadataError", tc.name, err)
		}
		if merr.Field != tc.field {
			t.Fatalf("%s: field=%q, want %q", tc.name, merr.Field, tc.field)
		}
	}
}

func TestExtractMetadata_SendsSchemaAndText(t *testing.T) {
	t.Parallel()

	var got Prompt
	llm := completerFunc(func(ctx context.Context, p Prompt) (string, error) {
		got = p
		return `{"line_count": 4, "language": "English", "tags": ["Scams"]}`, nil
	})

	m, err := ExtractMetadata(context.Background(), llm, "Beware of fake job offers")
	if err != nil {
		t.Fatalf("ExtractMetadata: %v", err)
	}
	if m.LineCount != 4 || len(m.Tags) != 1 || m.Tags[0] != "Scams" {
		t.Fatalf("got %+v", m)
	}
	if got.Input != "Beware of fake job offers" {
		t.Fatalf("Input=%q", got.Input)
	}
	if got.Instructions != extractInstructions {
		t.Fatalf("unexpected instructions")
	}
	if got.SchemaName != "PostMetadata" || got.Schema == nil {
		t.Fatalf("SchemaName=%q Schema=%v", got.SchemaName, got.Schema)
	}
}

func TestMetadataSchema_StrictObjectShape(t *testing.T) {
	t.Parallel()

	if metadataSchema["type"] != "object" {
		t.Fatalf("type=%v", metadataSchema["type"])
	}
	if metadataSchema["additionalProperties"] != false {
		t.Fatalf("additionalProperties=%v", metadataSchema["additionalProperties"])
	}
	props, ok := metadataSchema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("properties missing")
	}
	for _, key := range []string{"line_count", "language", "tags"} {
		if _, ok := props[key]; !ok {
			t.Fatalf("missing property %q", key)
		}
	}
	required, ok := metadataSchema["required"].([]string)
	if !ok || len(required) != 3 {
		t.Fatalf("required=%v", metadataSchema["required"])
	}
}
