package token

import "bytes"

// number scans a JSON5 numeric literal at d[0] and returns its length.
// Accepted forms: optional sign, then Infinity, NaN, a 0x/0X hex
// literal, or a decimal literal where the integer part, the fraction,
// or both may be present and an exponent may follow.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if n := constant(d[i:]); n > 0 {
		return i + n, nil
	}
	if n := hexLiteral(d[i:]); n > 0 {
		return i + n, nil
	}
	digits := asciiDigits(d[i:])
	if digits > 1 && d[i] == '0' {
		return 0, ErrNumberLeadingZero
	}
	i += digits
	f := fract(d[i:])
	if digits == 0 && f < 2 {
		// a bare sign or a bare dot is not a number
		return 0, ErrNumber
	}
	i += f
	i += exp(d[i:])
	return i, nil
}

func constant(d []byte) int {
	for _, tok := range [][]byte{[]byte("Infinity"), []byte("NaN")} {
		if bytes.HasPrefix(d, tok) {
			return len(tok)
		}
	}
	return 0
}

func hexLiteral(d []byte) int {
	if len(d) < 3 || d[0] != '0' {
		return 0
	}
	if d[1] != 'x' && d[1] != 'X' {
		return 0
	}
	i := 2
	for i < len(d) && hexDigit(d[i]) {
		i++
	}
	if i == 2 {
		return 0
	}
	return i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

// fract returns the length of a fraction at d[0], dot included.  A
// trailing dot with no digits is legal JSON5 when an integer part
// precedes it; the caller decides whether a length-1 fraction stands.
func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}
