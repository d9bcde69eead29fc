package token

import (
	"unicode"
	"unicode/utf8"
)

// Tokenize appends the tokens of d to dst and returns the result.
// Comments and whitespace are consumed and discarded; JSON5 keeps
// neither in the tree.
func Tokenize(dst []Token, d []byte) ([]Token, error) {
	posDoc := &PosDoc{d: d}
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		if c == '\n' {
			posDoc.nl(i)
			i++
			continue
		}
		if asciiSpace(c) {
			i++
			continue
		}
		switch c {
		case '{':
			dst = append(dst, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '"', '\'':
			off, err := quoted(d[i:])
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i))
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
			markNewlines(posDoc, d, i, i+off)
			i += off
		case '/':
			off, err := comment(d[i:])
			if err != nil {
				return dst, NewTokenizeErr(err, posDoc.Pos(i))
			}
			markNewlines(posDoc, d, i, i+off)
			i += off
		default:
			if c >= utf8.RuneSelf {
				r, sz := utf8.DecodeRune(d[i:])
				if r == 0x00a0 || r == 0xfeff || unicode.Is(unicode.Zs, r) ||
					r == '\u2028' || r == '\u2029' {
					i += sz
					continue
				}
			}
			switch {
			case c == '+' || c == '-' || c == '.' || asciiDigit(c):
				off, err := number(d[i:])
				if err != nil {
					return dst, NewTokenizeErr(err, posDoc.Pos(i))
				}
				dst = append(dst, Token{Type: TNumber, Pos: posDoc.Pos(i), Bytes: d[i : i+off]})
				i += off
			default:
				off := ident(d[i:])
				if off == 0 {
					return dst, UnexpectedErr(charSample(d[i:]), posDoc.Pos(i))
				}
				tok := Token{Pos: posDoc.Pos(i), Bytes: d[i : i+off]}
				switch string(tok.Bytes) {
				case "null":
					tok.Type = TNull
				case "true":
					tok.Type = TTrue
				case "false":
					tok.Type = TFalse
				case "Infinity", "NaN":
					tok.Type = TNumber
				default:
					tok.Type = TIdent
				}
				dst = append(dst, tok)
				i += off
			}
		}
	}
	return dst, nil
}

// comment scans a // or /* comment at d[0] and returns its length.
func comment(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrCharacter
	}
	switch d[1] {
	case '/':
		i := 2
		for i < len(d) && d[i] != '\n' {
			i++
		}
		return i, nil
	case '*':
		i := 2
		for i+1 < len(d) {
			if d[i] == '*' && d[i+1] == '/' {
				return i + 2, nil
			}
			i++
		}
		return 0, ErrUnterminatedCmnt
	default:
		return 0, ErrCharacter
	}
}

// ident scans an identifier at d[0] and returns its length, 0 when
// d[0] cannot start one.
func ident(d []byte) int {
	i := 0
	for i < len(d) {
		c := d[i]
		if c == '$' || c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			i++
			continue
		}
		if i > 0 && asciiDigit(c) {
			i++
			continue
		}
		if c >= utf8.RuneSelf {
			r, sz := utf8.DecodeRune(d[i:])
			if unicode.IsLetter(r) || (i > 0 && unicode.IsDigit(r)) {
				i += sz
				continue
			}
		}
		break
	}
	return i
}

func asciiSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// markNewlines records newline offsets inside multi-line lexemes
// (block comments, strings with line continuations).
func markNewlines(posDoc *PosDoc, d []byte, from, to int) {
	for j := from; j < to; j++ {
		if d[j] == '\n' {
			posDoc.nl(j)
		}
	}
}

func charSample(d []byte) string {
	r, sz := utf8.DecodeRune(d)
	if r == utf8.RuneError && sz == 1 {
		return "byte"
	}
	return "character " + string(r)
}
