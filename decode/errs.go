package decode

import "errors"

var (
	// ErrEmptyInput reports empty input text; an empty document is
	// never legal JSON5.
	ErrEmptyInput = errors.New("empty input is not legal JSON5")

	// ErrSyntax wraps a parser diagnostic; the parser's message,
	// position included, is preserved verbatim.
	ErrSyntax = errors.New("syntax error")

	// ErrEncoding reports that the input byte decoder failed.
	ErrEncoding = errors.New("input encoding error")
)
