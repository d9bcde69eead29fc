// Package format names the serializations the json5 tool reads and
// writes.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
// JSON5 is the native format; JSON and YAML are output targets.
//
// # Related Packages
//
//   - github.com/json5-format/go-json5/decode - decode text to values
//   - github.com/json5-format/go-json5/encode - encode values to text
package format
