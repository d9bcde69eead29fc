package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

// quoted scans a quoted string starting at d[0], which must be ' or ".
// It returns the total byte length of the literal, quotes included,
// validating escapes as it goes.
func quoted(d []byte) (int, error) {
	q := d[0]
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == q:
			return i + 1, nil
		case c == '\\':
			n, err := escape(d[i:])
			if err != nil {
				return 0, err
			}
			i += n
		case c == '\n', c == '\r':
			return 0, ErrNewlineInString
		case c < 0x20:
			return 0, ErrControlInString
		case c < utf8.RuneSelf:
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return 0, ErrBadUTF8
			}
			i += sz
		}
	}
	return 0, ErrUnterminated
}

// escape validates one backslash escape at d[0] and returns its length.
func escape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch c := d[1]; c {
	case 'b', 'f', 'n', 'r', 't', 'v', '0', '\'', '"', '\\', '/':
		if c == '0' && len(d) > 2 && asciiDigit(d[2]) {
			return 0, ErrBadEscape
		}
		return 2, nil
	case 'x':
		if len(d) < 4 || !hexDigit(d[2]) || !hexDigit(d[3]) {
			return 0, ErrBadEscape
		}
		return 4, nil
	case 'u':
		if len(d) < 6 || !hexDigit(d[2]) || !hexDigit(d[3]) || !hexDigit(d[4]) || !hexDigit(d[5]) {
			return 0, ErrBadUnicode
		}
		return 6, nil
	case '\n':
		return 2, nil
	case '\r':
		// \r\n counts as one line terminator
		if len(d) > 2 && d[2] == '\n' {
			return 3, nil
		}
		return 2, nil
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return 0, ErrBadEscape
	default:
		if c < utf8.RuneSelf {
			return 2, nil
		}
		r, sz := utf8.DecodeRune(d[1:])
		if r == utf8.RuneError && sz == 1 {
			return 0, ErrBadUTF8
		}
		return 1 + sz, nil
	}
}

// Unquote resolves a quoted string literal, quotes and escapes
// included, to its text.  The input must have been accepted by quoted.
func Unquote(d []byte) (string, error) {
	if len(d) < 2 {
		return "", ErrUnterminated
	}
	q := d[0]
	if q != '\'' && q != '"' {
		return "", ErrUnterminated
	}
	d = d[1 : len(d)-1]
	res := make([]byte, 0, len(d))
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			res = append(res, c)
			i++
			continue
		}
		if i+1 >= len(d) {
			return "", ErrBadEscape
		}
		switch e := d[i+1]; e {
		case 'b':
			res = append(res, '\b')
			i += 2
		case 'f':
			res = append(res, '\f')
			i += 2
		case 'n':
			res = append(res, '\n')
			i += 2
		case 'r':
			res = append(res, '\r')
			i += 2
		case 't':
			res = append(res, '\t')
			i += 2
		case 'v':
			res = append(res, '\v')
			i += 2
		case '0':
			res = append(res, 0)
			i += 2
		case 'x':
			if i+4 > len(d) {
				return "", ErrBadEscape
			}
			hi, lo := hexVal(d[i+2]), hexVal(d[i+3])
			if hi < 0 || lo < 0 {
				return "", ErrBadEscape
			}
			res = utf8.AppendRune(res, rune(hi<<4|lo))
			i += 4
		case 'u':
			r, n, err := unicodeEscape(d[i:])
			if err != nil {
				return "", err
			}
			res = utf8.AppendRune(res, r)
			i += n
		case '\n':
			i += 2
		case '\r':
			i += 2
			if i < len(d) && d[i] == '\n' {
				i++
			}
		default:
			if e < utf8.RuneSelf {
				res = append(res, e)
				i += 2
				break
			}
			r, sz := utf8.DecodeRune(d[i+1:])
			if r == utf8.RuneError && sz == 1 {
				return "", ErrBadUTF8
			}
			// escaped raw LS and PS act as line continuations
			if r == '\u2028' || r == '\u2029' {
				i += 1 + sz
				break
			}
			res = utf8.AppendRune(res, r)
			i += 1 + sz
		}
	}
	return string(res), nil
}

// unicodeEscape resolves \uXXXX at d[0], pairing surrogates when the
// following escape completes one.
func unicodeEscape(d []byte) (rune, int, error) {
	r1, ok := hex4(d[2:])
	if !ok {
		return 0, 0, ErrBadUnicode
	}
	if !utf16.IsSurrogate(r1) {
		return r1, 6, nil
	}
	if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
		r2, ok := hex4(d[8:])
		if ok {
			if r := utf16.DecodeRune(r1, r2); r != utf8.RuneError {
				return r, 12, nil
			}
		}
	}
	return utf8.RuneError, 6, nil
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for i := range 4 {
		v := hexVal(d[i])
		if v < 0 {
			return 0, false
		}
		r = r<<4 | rune(v)
	}
	return r, true
}

func hexDigit(c byte) bool {
	return hexVal(c) >= 0
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return -1
	}
}
