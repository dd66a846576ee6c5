package enrich

import (
	"fmt"
	"strings"
)

// metadataParseMessage is the historical diagnostic for unparseable model
// replies. It is deliberately coarse: malformed JSON, truncated output, and
// policy refusals all land here.
const metadataParseMessage = "Context is too big, unable to process"

// MetadataParseError reports a model reply (extraction or unification) that
// could not be parsed as JSON. It aborts the whole batch; there is no
// per-post retry or skip.
type MetadataParseError struct {
	Err error
}

func (e *MetadataParseError) Error() string { return metadataParseMessage }

func (e *MetadataParseError) Unwrap() error { return e.Err }

// MalformedMetadataError reports a reply that parsed as JSON but is missing
// an expected key or carries a value of the wrong shape.
type MalformedMetadataError struct {
	Field  string
	Reason string
}

func (e *MalformedMetadataError) Error() string {
	return fmt.Sprintf("malformed metadata: field %q %s", e.Field, e.Reason)
}

// DecodeError reports that none of the candidate encodings could decode the
// input file.
type DecodeError struct {
	Path      string
	Encodings []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unable to read %s with available encodings (%s)", e.Path, strings.Join(e.Encodings, ", "))
}

// JSONLoadError reports an input file that decoded cleanly under Encoding
// but is not valid JSON. The remaining encodings are not tried: a decode
// failure falls through, a parse failure does not.
type JSONLoadError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *JSONLoadError) Error() string {
	return fmt.Sprintf("%s could not be decoded as JSON (%s): %v", e.Path, e.Encoding, e.Err)
}

func (e *JSONLoadError) Unwrap() error { return e.Err }
