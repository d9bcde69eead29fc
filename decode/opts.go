package decode

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/json5-format/go-json5/token"
)

// Pair is one decoded object member, in source order.
type Pair struct {
	Key   string
	Value any
}

type decodeOpts struct {
	parseInt      func(literal string, base int) (int64, error)
	parseFloat    func(literal string) (float64, error)
	parseConstant func(literal string) (float64, error)
	pairsHook     func(pairs []Pair) (any, error)
	objectHook    func(obj *linkedhashmap.Map) (any, error)
	encoding      func(d []byte) (string, error)
	maxDepth      int
}

type DecodeOption func(*decodeOpts)

// ParseInt overrides integer literal conversion.  base is 16 for
// hex-prefixed literals and 10 otherwise; the literal keeps its sign
// and, in base 16, its 0x prefix.
func ParseInt(f func(literal string, base int) (int64, error)) DecodeOption {
	return func(o *decodeOpts) { o.parseInt = f }
}

// ParseFloat overrides floating point literal conversion.
func ParseFloat(f func(literal string) (float64, error)) DecodeOption {
	return func(o *decodeOpts) { o.parseFloat = f }
}

// ParseConstant overrides conversion of the Infinity, -Infinity and
// NaN tokens.
func ParseConstant(f func(literal string) (float64, error)) DecodeOption {
	return func(o *decodeOpts) { o.parseConstant = f }
}

// PairsHook receives each object's decoded members in source order,
// duplicates included, and produces the mapping value.  When set it
// takes precedence over ObjectHook, which is never called.
func PairsHook(f func(pairs []Pair) (any, error)) DecodeOption {
	return func(o *decodeOpts) { o.pairsHook = f }
}

// ObjectHook receives each object's last-key-wins ordered mapping and
// may replace it.  Ignored when PairsHook is set.
func ObjectHook(f func(obj *linkedhashmap.Map) (any, error)) DecodeOption {
	return func(o *decodeOpts) { o.objectHook = f }
}

// InputEncoding installs a byte-to-text decoder applied at the input
// edge when Decode receives bytes.  The default treats input as UTF-8.
func InputEncoding(f func(d []byte) (string, error)) DecodeOption {
	return func(o *decodeOpts) { o.encoding = f }
}

// MaxDepth overrides the parser nesting limit.
func MaxDepth(v int) DecodeOption {
	return func(o *decodeOpts) { o.maxDepth = v }
}

func defaultOpts() *decodeOpts {
	return &decodeOpts{
		parseInt:      defaultParseInt,
		parseFloat:    defaultParseFloat,
		parseConstant: defaultParseConstant,
		encoding:      defaultEncoding,
	}
}

func defaultParseInt(literal string, base int) (int64, error) {
	if base == 16 {
		// base 0 lets strconv accept the sign and the 0x prefix
		return strconv.ParseInt(literal, 0, 64)
	}
	return strconv.ParseInt(literal, base, 64)
}

func defaultParseFloat(literal string) (float64, error) {
	return strconv.ParseFloat(literal, 64)
}

func defaultParseConstant(literal string) (float64, error) {
	if strings.Contains(literal, "NaN") {
		return math.NaN(), nil
	}
	if strings.HasPrefix(literal, "-") {
		return math.Inf(-1), nil
	}
	return math.Inf(1), nil
}

func defaultEncoding(d []byte) (string, error) {
	if !utf8.Valid(d) {
		return "", token.ErrBadUTF8
	}
	return string(d), nil
}
