// Package decode turns parsed JSON5 documents into native Go values.
//
// # Usage
//
//	v, err := decode.Decode([]byte(`{a: 0x1A, b: [1, 2.5]}`))
//
// Decoded values use nil, bool, int64, float64, string, []any and
// *linkedhashmap.Map (an insertion-ordered mapping, so source key
// order survives).  Literal classification is syntactic: 3 is an
// int64, 3.0 and 3e2 are float64, 0x1A is the int64 26.
//
// linkedhashmap's Get reports found only for non-nil values, so a
// member decoded from null looks absent to Get; test membership with
// Keys when null members matter.
//
// The only extension points are the enumerated hooks: ParseInt,
// ParseFloat, ParseConstant, PairsHook and ObjectHook.  There is no
// whole-decoder replacement.
//
// # Related Packages
//
//   - github.com/json5-format/go-json5/parse - text to syntax tree
//   - github.com/json5-format/go-json5/encode - native values to text
package decode
