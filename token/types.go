package token

import "fmt"

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TString
	TNumber
	TIdent
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TString:  "TString",
		TNumber:  "TNumber",
		TIdent:   "TIdent",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
}

// Token is one lexical token.  Bytes is the raw source slice, quotes
// and escapes included for TString; String() resolves it.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := Unquote(t.Bytes)
		if err != nil {
			// the tokenizer validated escapes already
			return string(t.Bytes)
		}
		return s
	default:
		return string(t.Bytes)
	}
}
