package encode

type EncodeOption func(*EncState)

// EncodeIndent turns on indented output: each nesting level opens with
// a newline followed by width*level spaces, and the closing bracket is
// preceded by the same at its own level.  width must be >= 0.
func EncodeIndent(width int) EncodeOption {
	return func(es *EncState) {
		es.indented = true
		es.indent = width
	}
}

// EncodeCompact restores compact output, undoing EncodeIndent.
func EncodeCompact() EncodeOption {
	return func(es *EncState) { es.indented = false }
}

// EncodeSeparators overrides the item and key separators.  The
// defaults are ", " and ": " for compact output; indented output
// drops the blank after the comma.  An explicit item separator
// applies between members even when indentation is active; the
// newline and padding are inserted in addition.
func EncodeSeparators(item, key string) EncodeOption {
	return func(es *EncState) {
		es.itemSep = item
		es.keySep = key
		es.sepsSet = true
	}
}

// EncodeSortKeys emits mapping keys in sorted order instead of the
// mapping's own iteration order.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// EncodeASCII controls ASCII-only output.  On (the default), every
// character outside codepoints 32..127 is written as a \uXXXX escape;
// off, characters beyond ASCII are written verbatim.  Quotes,
// backslashes and control characters are escaped either way.
func EncodeASCII(v bool) EncodeOption {
	return func(es *EncState) { es.asciiOnly = v }
}

// EncodeCheckCircular controls circular reference detection.  On (the
// default), re-entering a container already open in the current call
// fails with ErrCircular.
func EncodeCheckCircular(v bool) EncodeOption {
	return func(es *EncState) { es.checkCircular = v }
}

// EncodeAllowNonFinite controls NaN and Infinity handling.  On (the
// default), non-finite floats encode as the bare tokens NaN, Infinity
// and -Infinity; off, they fail with ErrNonFinite.
func EncodeAllowNonFinite(v bool) EncodeOption {
	return func(es *EncState) { es.allowNonFinite = v }
}

// EncodeSkipInvalidKeys drops mapping entries whose key type is not
// encodable instead of failing with ErrKeyType.
func EncodeSkipInvalidKeys(v bool) EncodeOption {
	return func(es *EncState) { es.skipKeys = v }
}

// EncodeDefault installs the fallback hook invoked for values of
// unrecognized types.  The hook returns a substitute value to encode
// in place of the original.
func EncodeDefault(hook func(v any) (any, error)) EncodeOption {
	return func(es *EncState) { es.defaultHook = hook }
}

// EncodeMaxDepth overrides the nesting depth limit.
func EncodeMaxDepth(v int) EncodeOption {
	return func(es *EncState) {
		if v > 0 {
			es.maxDepth = v
		}
	}
}

// EncodeColors turns on colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
