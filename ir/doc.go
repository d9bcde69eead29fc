// Package ir defines the syntax tree produced by parsing JSON5 text.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{a: 1}`))
//	val := ir.Get(node, "a") // Number node with literal "1"
//
// Nodes are a tagged union over the JSON5 value kinds.  Number nodes
// carry the raw source literal so that the decode layer, not the
// parser, decides how literals become native values.
//
// # Related Packages
//
//   - github.com/json5-format/go-json5/parse - parse text to ir
//   - github.com/json5-format/go-json5/decode - ir to native values
//   - github.com/json5-format/go-json5/encode - native values to text
package ir
