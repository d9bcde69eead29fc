package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"
)

// Quote selection: single quotes unless the string itself contains a
// single quote, then double quotes.  The wrapping quote never occurs
// unescaped inside, and the other quote character needs no escape at
// all, so exactly one of the two quote escapes is live per string.

func quoteString(v string, es *EncState) string {
	if !strings.Contains(v, "'") {
		return "'" + escString(v, es, true, false) + "'"
	}
	return `"` + escString(v, es, false, true) + `"`
}

func escString(v string, es *EncState, escSingle, escDouble bool) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		switch {
		case r == '"' && escDouble:
			b.WriteString(`\"`)
		case r == '\'' && escSingle:
			b.WriteString(`\'`)
		case r == '\\':
			b.WriteString(`\\`)
		case r >= 32 && r < 128:
			b.WriteRune(r)
		case r >= 128 && !es.asciiOnly:
			b.WriteRune(r)
		case r > 0xffff:
			// fixed-width escapes: astral codepoints go out as a
			// surrogate pair
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
		default:
			fmt.Fprintf(&b, `\u%04x`, r)
		}
	}
	return b.String()
}

// Key rendering.  Keys of type string, integer, float, bool and nil
// are representable; everything else is invalid and either skipped or
// fails per the skip-invalid-keys policy.  The reported bool is false
// for a skipped key.

// renderKey returns the key's plain text and its rendered form.  The
// plain text is what sorted output orders by.
func renderKey(k any, es *EncState) (raw, lit string, ok bool, err error) {
	switch t := k.(type) {
	case string:
		return t, renderStringKey(t, es), true, nil
	case bool:
		raw = strconv.FormatBool(t)
		return raw, raw, true, nil
	case nil:
		return "null", "null", true, nil
	case int:
		return renderIntKey(strconv.FormatInt(int64(t), 10), es)
	case int8:
		return renderIntKey(strconv.FormatInt(int64(t), 10), es)
	case int16:
		return renderIntKey(strconv.FormatInt(int64(t), 10), es)
	case int32:
		return renderIntKey(strconv.FormatInt(int64(t), 10), es)
	case int64:
		return renderIntKey(strconv.FormatInt(t, 10), es)
	case uint:
		return renderIntKey(strconv.FormatUint(uint64(t), 10), es)
	case uint8:
		return renderIntKey(strconv.FormatUint(uint64(t), 10), es)
	case uint16:
		return renderIntKey(strconv.FormatUint(uint64(t), 10), es)
	case uint32:
		return renderIntKey(strconv.FormatUint(uint64(t), 10), es)
	case uint64:
		return renderIntKey(strconv.FormatUint(t, 10), es)
	case float32:
		return renderFloatKey(float64(t), 32, es)
	case float64:
		return renderFloatKey(t, 64, es)
	default:
		if es.skipKeys {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("%w: %T", ErrKeyType, k)
	}
}

func renderIntKey(raw string, es *EncState) (string, string, bool, error) {
	return raw, bareOrQuote(raw, es), true, nil
}

func renderFloatKey(f float64, bits int, es *EncState) (string, string, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !es.allowNonFinite {
			return "", "", false, fmt.Errorf("%w: %v", ErrNonFinite, f)
		}
		switch {
		case math.IsInf(f, 1):
			return "Infinity", "Infinity", true, nil
		case math.IsInf(f, -1):
			return "-Infinity", bareOrQuote("-Infinity", es), true, nil
		}
		return "NaN", "NaN", true, nil
	}
	raw := formatFloat(f, bits)
	return raw, bareOrQuote(raw, es), true, nil
}

// renderStringKey emits a bare key when it is entirely word
// characters, quoting it like any string otherwise.
func renderStringKey(k string, es *EncState) string {
	if wordLike(k) {
		return k
	}
	return quoteString(k, es)
}

// bareOrQuote applies the bare-key rule to an already-rendered
// non-string key literal, e.g. 1.5 quotes while 26 stays bare.
func bareOrQuote(lit string, es *EncState) string {
	if wordLike(lit) {
		return lit
	}
	return quoteString(lit, es)
}

func wordLike(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}
