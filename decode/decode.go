package decode

import (
	"fmt"
	"io"

	"github.com/json5-format/go-json5/parse"
)

// Decode converts one JSON5 document to a native value.  Byte input is
// decoded to text first (UTF-8 unless InputEncoding says otherwise),
// empty text fails with ErrEmptyInput, and parser diagnostics surface
// wrapped in ErrSyntax with their position text intact.
func Decode(d []byte, opts ...DecodeOption) (any, error) {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	s, err := o.encoding(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return decodeString(s, o)
}

// DecodeString is Decode for input that is already text.
func DecodeString(s string, opts ...DecodeOption) (any, error) {
	o := defaultOpts()
	for _, f := range opts {
		f(o)
	}
	return decodeString(s, o)
}

// DecodeReader reads r to the end and decodes the result.  There is no
// incremental mode; the whole document is in memory before parsing.
func DecodeReader(r io.Reader, opts ...DecodeOption) (any, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(d, opts...)
}

func decodeString(s string, o *decodeOpts) (any, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	var pOpts []parse.ParseOption
	if o.maxDepth > 0 {
		pOpts = append(pOpts, parse.MaxDepth(o.maxDepth))
	}
	node, err := parse.Parse([]byte(s), pOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	return walk(node, o)
}
