// Package json5 is a codec for JSON5, a relaxed superset of JSON.
//
// # Usage
//
//	v, err := json5.Decode([]byte(`{hex: 0x1A, text: 'no escaping "needed"'}`))
//
//	s, err := json5.Encode(v)
//	s, err := json5.Encode(v, encode.EncodeIndent(2))
//
//	// strict JSON output instead of JSON5
//	s, err := json5.EncodeJSON(v)
//
// Decoding maps documents onto nil, bool, int64, float64, string,
// []any and *linkedhashmap.Map values; encoding walks such values
// back to text.  The subpackages hold the moving parts: token and
// parse produce the syntax tree, decode and encode translate between
// trees and native values and own the option constructors.
package json5

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/json5-format/go-json5/decode"
	"github.com/json5-format/go-json5/encode"
)

type DecodeOption = decode.DecodeOption

type EncodeOption = encode.EncodeOption

// Decode converts one JSON5 document to a native value.
func Decode(d []byte, opts ...DecodeOption) (any, error) {
	return decode.Decode(d, opts...)
}

// DecodeString converts one JSON5 document, given as text, to a
// native value.
func DecodeString(s string, opts ...DecodeOption) (any, error) {
	return decode.DecodeString(s, opts...)
}

// DecodeReader reads one whole document from r and decodes it.
func DecodeReader(r io.Reader, opts ...DecodeOption) (any, error) {
	return decode.DecodeReader(r, opts...)
}

// Encode renders v as JSON5 text.
func Encode(v any, opts ...EncodeOption) (string, error) {
	return encode.String(v, opts...)
}

// EncodeWriter renders v as JSON5 text on w; on error nothing is
// written.
func EncodeWriter(w io.Writer, v any, opts ...EncodeOption) error {
	return encode.Encode(v, w, opts...)
}

// EncodeJSON renders v as strict JSON, bypassing the JSON5 writer
// entirely.  Ordered mappings keep their key order; output is the
// standard library serializer's, so NaN and Infinity are errors here
// regardless of encoder options.
func EncodeJSON(v any) (string, error) {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	d := buf.Bytes()
	// Encode appends a newline the string form does not want
	if n := len(d); n > 0 && d[n-1] == '\n' {
		d = d[:n-1]
	}
	return string(d), nil
}
