package enrich

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// batchEncoding is one candidate text encoding for the input file.
type batchEncoding struct {
	name   string
	decode func([]byte) (string, error)
}

// batchEncodings are tried in order. A decode error falls through to the
// next candidate; a JSON parse error under a decoded candidate aborts the
// load without trying the rest.
var batchEncodings = []batchEncoding{
	{name: "utf-8", decode: decodeUTF8},
	{name: "utf-16", decode: decodeUTF16},
	{name: "latin-1", decode: decodeLatin1},
}

// LoadBatch reads the input file and returns its posts in file order.
func LoadBatch(path string) ([]Post, error) {
	if path == "" {
		return nil, errors.New("LoadBatch: path is empty")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadBatch: read file: %w", err)
	}

	for _, enc := range batchEncodings {
		text, err := enc.decode(b)
		if err != nil {
			continue
		}
		var posts []Post
		if err := json.Unmarshal([]byte(text), &posts); err != nil {
			return nil, &JSONLoadError{Path: path, Encoding: enc.name, Err: err}
		}
		return posts, nil
	}

	names := make([]string, 0, len(batchEncodings))
	for _, enc := range batchEncodings {
		names = append(names, enc.name)
	}
	return nil, &DecodeError{Path: path, Encodings: names}
}

func decodeUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errors.New("invalid UTF-8 byte sequence")
	}
	// The decoder's only remaining job is stripping a BOM, if present.
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeUTF16 requires a byte-order mark: BOM-less UTF-16 is
// indistinguishable from mojibake and counts as a decode failure.
func decodeUTF16(b []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// decodeLatin1 cannot fail: every byte is a valid ISO 8859-1 code point.
func decodeLatin1(b []byte) (string, error) {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
