package enrich

import (
	"encoding/json"
	"fmt"
)

// Post is one social-media post record. Text is required in the input file;
// LineCount, Language, and Tags are filled in by the extractor. Every other
// input field is kept verbatim in Extra and written back on output.
type Post struct {
	Text      string
	LineCount int
	Language  string
	Tags      []string

	Extra map[string]json.RawMessage
}

// Metadata is the model-extracted metadata for one post.
type Metadata struct {
	LineCount int
	Language  string
	Tags      []string
}

// Languages the extractor may report.
const (
	LanguageEnglish  = "English"
	LanguageHinglish = "Hinglish"
)

const (
	fieldText      = "text"
	fieldLineCount = "line_count"
	fieldLanguage  = "language"
	fieldTags      = "tags"
)

func (p *Post) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}

	raw, ok := fields[fieldText]
	if !ok {
		return fmt.Errorf("post has no %q field", fieldText)
	}
	if err := json.Unmarshal(raw, &p.Text); err != nil {
		return fmt.Errorf("post %q field: %w", fieldText, err)
	}
	delete(fields, fieldText)

	// Metadata fields may already be present (e.g. re-running over enriched
	// output); parse them into their slots instead of shadowing them in Extra.
	if raw, ok := fields[fieldLineCount]; ok {
		if err := json.Unmarshal(raw, &p.LineCount); err != nil {
			return fmt.Errorf("post %q field: %w", fieldLineCount, err)
		}
		delete(fields, fieldLineCount)
	}
	if raw, ok := fields[fieldLanguage]; ok {
		if err := json.Unmarshal(raw, &p.Language); err != nil {
			return fmt.Errorf("post %q field: %w", fieldLanguage, err)
		}
		delete(fields, fieldLanguage)
	}
	if raw, ok := fields[fieldTags]; ok {
		if err := json.Unmarshal(raw, &p.Tags); err != nil {
			return fmt.Errorf("post %q field: %w", fieldTags, err)
		}
		delete(fields, fieldTags)
	}

	if len(fields) > 0 {
		p.Extra = fields
	}
	return nil
}

func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+4)
	for k, v := range p.Extra {
		out[k] = v
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	for key, v := range map[string]any{
		fieldText:      p.Text,
		fieldLineCount: p.LineCount,
		fieldLanguage:  p.Language,
		fieldTags:      tags,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("post %q field: %w", key, err)
		}
		out[key] = b
	}
	return json.Marshal(out)
}

// applyMetadata is the explicit structured merge of an extraction result
// into the post: the three metadata fields are set, nothing else changes.
func (p *Post) applyMetadata(m Metadata) {
	p.LineCount = m.LineCount
	p.Language = m.Language
	p.Tags = append([]string(nil), m.Tags...)
}
