// Package token tokenizes JSON5 text.
//
// The tokenizer is whole-document: Tokenize scans a []byte and returns
// a flat token slice.  Positions are byte offsets resolved to
// line/column through PosDoc on demand, so error paths pay for
// line/column math and the happy path does not.
package token
