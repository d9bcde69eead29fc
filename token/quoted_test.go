package token

import (
	"errors"
	"testing"
)

func TestUnquote(t *testing.T) {
	uts := []struct {
		in   string
		want string
	}{
		{in: `'abc'`, want: "abc"},
		{in: `''`, want: ""},
		{in: `'it\'s'`, want: "it's"},
		{in: `"say \"hi\""`, want: `say "hi"`},
		{in: `'a\nb\tc'`, want: "a\nb\tc"},
		{in: `'\b\f\r\v\0'`, want: "\b\f\r\v\x00"},
		{in: `'\/'`, want: "/"},
		{in: `'\q'`, want: "q"},
		{in: `'\x41'`, want: "A"},
		{in: `'\u00e9'`, want: "\u00e9"},
		{in: `'\ud83d\ude00'`, want: "\U0001f600"},
		// an unpaired surrogate resolves to the replacement character
		{in: `'\ud83d'`, want: "\ufffd"},
		{in: "'a\\\nb'", want: "ab"},
		{in: "'a\\\r\nb'", want: "ab"},
		{in: "'a\\\rb'", want: "ab"},
		{in: "'a\\\u2028b'", want: "ab"},
		{in: "'raw \u00e9'", want: "raw \u00e9"},
	}
	for i := range uts {
		ut := &uts[i]
		got, err := Unquote([]byte(ut.in))
		if err != nil {
			t.Errorf("%q: %v", ut.in, err)
			continue
		}
		if got != ut.want {
			t.Errorf("%q: got %q, want %q", ut.in, got, ut.want)
		}
	}
}

func TestUnquoteShort(t *testing.T) {
	for _, in := range []string{"", "'", "x"} {
		if _, err := Unquote([]byte(in)); !errors.Is(err, ErrUnterminated) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestNumberLengths(t *testing.T) {
	nts := []struct {
		in  string
		len int
	}{
		{in: "0", len: 1},
		{in: "-12,", len: 3},
		{in: "+0x1Af]", len: 6},
		{in: "3.25e-4 ", len: 7},
		{in: "5.", len: 2},
		{in: ".5", len: 2},
		{in: "Infinity,", len: 8},
		{in: "-NaN", len: 4},
		// a dangling exponent marker is not part of the number
		{in: "1e", len: 1},
		{in: "1e+", len: 1},
	}
	for i := range nts {
		nt := &nts[i]
		n, err := number([]byte(nt.in))
		if err != nil {
			t.Errorf("%q: %v", nt.in, err)
			continue
		}
		if n != nt.len {
			t.Errorf("%q: got length %d, want %d", nt.in, n, nt.len)
		}
	}
}
