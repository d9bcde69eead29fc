// Package encode renders native Go values as JSON5 text.
//
// # Usage
//
//	s, err := encode.String(v)
//	s, err := encode.String(v, encode.EncodeIndent(2), encode.EncodeSortKeys(true))
//
//	// write to an io.Writer; nothing is written on error
//	err := encode.Encode(v, w)
//
// Strings wrap in single quotes unless they contain a single quote,
// object keys made only of letters, digits and underscores go bare,
// and containers are checked for circular references with stack
// discipline, so one container may appear under several siblings but
// never under itself.
//
// The only extension point is the EncodeDefault hook for values of
// unrecognized types.  There is no whole-encoder replacement.
//
// # Related Packages
//
//   - github.com/json5-format/go-json5/decode - text to native values
package encode
