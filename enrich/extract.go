package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Completer is the minimal capability the pipeline needs from the LLM
// collaborator: send one prompt, synchronously get the completion text back.
// Transport concerns (auth, retries, rate limits) belong to implementations.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}

// Prompt is one request to the collaborator. Schema, when non-nil, lets
// schema-aware providers constrain the completion to SchemaName's shape;
// providers without structured output may ignore it.
type Prompt struct {
	Instructions string
	Input        string

	SchemaName string
	Schema     map[string]any
}

// ExtractMetadata asks the model for the line count, language, and tags of
// one cleaned post text. One outbound call per post, no caching.
func ExtractMetadata(ctx context.Context, llm Completer, text string) (Metadata, error) {
	if llm == nil {
		return Metadata{}, errors.New("ExtractMetadata: llm is nil")
	}

	reply, err := llm.Complete(ctx, Prompt{
		Instructions: extractInstructions,
		Input:        text,
		SchemaName:   "PostMetadata",
		Schema:       metadataSchema,
	})
	if err != nil {
		return Metadata{}, fmt.Errorf("ExtractMetadata: complete: %w", err)
	}
	return parseMetadata(reply)
}

// parseMetadata validates the reply field by field. Keys beyond the three
// expected ones are ignored; a missing or mistyped key is malformed.
func parseMetadata(reply string) (Metadata, error) {
	var fields map[string]json.RawMessage
	if err := decodeModelJSON(reply, &fields); err != nil {
		return Metadata{}, &MetadataParseError{Err: err}
	}

	var m Metadata
	raw, ok := fields[fieldLineCount]
	if !ok {
		return Metadata{}, &MalformedMetadataError{Field: fieldLineCount, Reason: "is missing"}
	}
	if err := json.Unmarshal(raw, &m.LineCount); err != nil {
		return Metadata{}, &MalformedMetadataError{Field: fieldLineCount, Reason: "is not an integer"}
	}

	raw, ok = fields[fieldLanguage]
	if !ok {
		return Metadata{}, &MalformedMetadataError{Field: fieldLanguage, Reason: "is missing"}
	}
	if err := json.Unmarshal(raw, &m.Language); err != nil {
		return Metadata{}, &MalformedMetadataError{Field: fieldLanguage, Reason: "is not a string"}
	}
	if m.Language != LanguageEnglish && m.Language != LanguageHinglish {
		return Metadata{}, &MalformedMetadataError{
			Field:  fieldLanguage,
			Reason: fmt.Sprintf("must be %s or %s", LanguageEnglish, LanguageHinglish),
		}
	}

	raw, ok = fields[fieldTags]
	if !ok {
		return Metadata{}, &MalformedMetadataError{Field: fieldTags, Reason: "is missing"}
	}
	if err := json.Unmarshal(raw, &m.Tags); err != nil {
		return Metadata{}, &MalformedMetadataError{Field: fieldTags, Reason: "is not an array of strings"}
	}

	return m, nil
}

// decodeModelJSON unmarshals JSON from a model reply, with a small amount of
// robustness for replies that wrap the JSON in extra text or whitespace.
func decodeModelJSON(reply string, v any) error {
	s := strings.TrimSpace(reply)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	// Fast path: valid JSON as-is.
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	// Fallback: attempt to extract the first top-level JSON object.
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}
