package enrich

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// WriteBatch serializes posts as a four-space-indented JSON array and
// atomically replaces path. Non-ASCII text is written verbatim.
func WriteBatch(path string, posts []Post) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(posts); err != nil {
		return fmt.Errorf("WriteBatch: marshal posts: %w", err)
	}
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("WriteBatch: write: %w", err)
	}
	return nil
}
