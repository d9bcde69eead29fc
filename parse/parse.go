// Package parse provides JSON5 parsing support.
package parse

import (
	"fmt"

	"github.com/json5-format/go-json5/debug"
	"github.com/json5-format/go-json5/ir"
	"github.com/json5-format/go-json5/token"
)

// Parse parses one JSON5 document into a syntax tree.  The tree keeps
// object pairs in source order, duplicate keys included; number nodes
// keep their raw literals.  Trailing non-whitespace after the document
// is an error.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Tokens() {
		for i := range toks {
			debug.Logf("%s\n", toks[i].Info())
		}
	}
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	off := 0
	res, err := parseValue(toks, &off, 0, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.UnexpectedErr(fmt.Sprintf("%q after document", string(t.Bytes)), t.Pos))
	}
	if debug.Parse() {
		debug.Logf("parsed %s document, %d tokens\n", res.Type, len(toks))
	}
	return res, nil
}

func parseValue(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	if depth > opts.maxDepth {
		return nil, ErrTooDeep
	}
	if *pi >= len(toks) {
		return nil, unexpectedEnd(toks)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TNull:
		*pi++
		return ir.Null(), nil
	case token.TTrue:
		*pi++
		return ir.FromBool(true), nil
	case token.TFalse:
		*pi++
		return ir.FromBool(false), nil
	case token.TString:
		s, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInternal, token.NewTokenizeErr(err, t.Pos))
		}
		*pi++
		return ir.FromString(s), nil
	case token.TNumber:
		*pi++
		return ir.FromNumber(string(t.Bytes)), nil
	case token.TLCurl:
		*pi++
		return parseObject(toks, pi, depth+1, opts)
	case token.TLSquare:
		*pi++
		return parseArray(toks, pi, depth+1, opts)
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.UnexpectedErr(fmt.Sprintf("%q", string(t.Bytes)), t.Pos))
	}
}

// parseObject parses the pairs after an already-consumed '{'.
func parseObject(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		if *pi >= len(toks) {
			return nil, unexpectedEnd(toks)
		}
		t := &toks[*pi]
		if t.Type == token.TRCurl {
			*pi++
			return ir.FromKeyVals(kvs), nil
		}
		key, err := parseKey(toks, pi)
		if err != nil {
			return nil, err
		}
		if *pi >= len(toks) {
			return nil, unexpectedEnd(toks)
		}
		if toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: %w", ErrParse,
				token.ExpectedErr("':' after object key", toks[*pi].Pos))
		}
		*pi++
		val, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
		more, err := parseSep(toks, pi, token.TRCurl, "',' or '}'")
		if err != nil {
			return nil, err
		}
		if !more {
			return ir.FromKeyVals(kvs), nil
		}
	}
}

func parseKey(toks []token.Token, pi *int) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TString:
		s, err := token.Unquote(t.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errInternal, token.NewTokenizeErr(err, t.Pos))
		}
		*pi++
		return ir.FromString(s), nil
	case token.TIdent, token.TNull, token.TTrue, token.TFalse:
		// keywords are ordinary member names in JSON5
		*pi++
		return ir.FromString(string(t.Bytes)), nil
	case token.TNumber:
		// Infinity and NaN tokenize as numbers but are still
		// identifier names when used as keys
		if s := string(t.Bytes); s == "Infinity" || s == "NaN" {
			*pi++
			return ir.FromString(s), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.ExpectedErr("object key", t.Pos))
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.ExpectedErr("object key", t.Pos))
	}
}

// parseArray parses the elements after an already-consumed '['.
func parseArray(toks []token.Token, pi *int, depth int, opts *parseOpts) (*ir.Node, error) {
	vals := []*ir.Node{}
	for {
		if *pi >= len(toks) {
			return nil, unexpectedEnd(toks)
		}
		if toks[*pi].Type == token.TRSquare {
			*pi++
			return ir.FromSlice(vals), nil
		}
		val, err := parseValue(toks, pi, depth, opts)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
		more, err := parseSep(toks, pi, token.TRSquare, "',' or ']'")
		if err != nil {
			return nil, err
		}
		if !more {
			return ir.FromSlice(vals), nil
		}
	}
}

// parseSep consumes the separator after a member: a comma (possibly
// trailing) or the closer.  It reports whether parsing continues
// inside the container.
func parseSep(toks []token.Token, pi *int, closer token.TokenType, want string) (bool, error) {
	if *pi >= len(toks) {
		return false, unexpectedEnd(toks)
	}
	switch toks[*pi].Type {
	case token.TComma:
		*pi++
		return true, nil
	case closer:
		*pi++
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrParse,
			token.ExpectedErr(want, toks[*pi].Pos))
	}
}

func unexpectedEnd(toks []token.Token) error {
	var pos *token.Pos
	if len(toks) > 0 {
		last := &toks[len(toks)-1]
		pos = last.Pos.D.Pos(last.Pos.I + len(last.Bytes))
	}
	if pos == nil {
		return ErrEmpty
	}
	return fmt.Errorf("%w: %w", ErrParse, token.UnexpectedErr("end of document", pos))
}
