package decode

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

func TestDecodeScalars(t *testing.T) {
	dts := []struct {
		in   string
		want any
	}{
		{in: `null`, want: nil},
		{in: `true`, want: true},
		{in: `false`, want: false},
		{in: `3`, want: int64(3)},
		{in: `-3`, want: int64(-3)},
		{in: `0x1A`, want: int64(26)},
		{in: `0X1a`, want: int64(26)},
		{in: `-0x2`, want: int64(-2)},
		{in: `3.0`, want: float64(3)},
		{in: `3e2`, want: float64(300)},
		{in: `.5`, want: 0.5},
		{in: `5.`, want: 5.0},
		{in: `0e21`, want: 0.0},
		{in: `Infinity`, want: math.Inf(1)},
		{in: `-Infinity`, want: math.Inf(-1)},
		{in: `'hello'`, want: "hello"},
		{in: `"it's"`, want: "it's"},
	}
	for i := range dts {
		dt := &dts[i]
		got, err := DecodeString(dt.in)
		if err != nil {
			t.Errorf("%q: %v", dt.in, err)
			continue
		}
		if got != dt.want {
			t.Errorf("%q: got %v (%T), want %v (%T)", dt.in, got, got, dt.want, dt.want)
		}
	}
}

func TestDecodeNaN(t *testing.T) {
	for _, in := range []string{"NaN", "-NaN", "+NaN"} {
		got, err := DecodeString(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		f, ok := got.(float64)
		if !ok || !math.IsNaN(f) {
			t.Errorf("%q: got %v", in, got)
		}
	}
}

func TestDecodeObject(t *testing.T) {
	got, err := DecodeString(`{b: 1, a: 2, b: 3}`)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := got.(*linkedhashmap.Map)
	if !ok {
		t.Fatalf("got %T", got)
	}
	// first occurrence keeps its position, last occurrence its value
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("got keys %v", keys)
	}
	if v, _ := m.Get("b"); v != int64(3) {
		t.Errorf("got b=%v", v)
	}
	if v, _ := m.Get("a"); v != int64(2) {
		t.Errorf("got a=%v", v)
	}
}

func TestDecodeNested(t *testing.T) {
	got, err := DecodeString(`{a: [1, {b: null}], c: []}`)
	if err != nil {
		t.Fatal(err)
	}
	m := got.(*linkedhashmap.Map)
	av, _ := m.Get("a")
	arr, ok := av.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("got %v", av)
	}
	if arr[0] != int64(1) {
		t.Errorf("got %v", arr[0])
	}
	inner, ok := arr[1].(*linkedhashmap.Map)
	if !ok {
		t.Fatalf("got %T", arr[1])
	}
	// linkedhashmap's Get reports a null member as absent, so
	// presence is checked through Keys
	if keys := inner.Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("got %v", keys)
	}
	if v, _ := inner.Get("b"); v != nil {
		t.Errorf("got %v", v)
	}
	cv, _ := m.Get("c")
	if carr, ok := cv.([]any); !ok || len(carr) != 0 {
		t.Errorf("got %v", cv)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	if _, err := DecodeString(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v", err)
	}
	if _, err := Decode(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("got %v", err)
	}
}

func TestDecodeSyntaxErr(t *testing.T) {
	for _, in := range []string{"{", "[1,, 2]", "{} {}", "'open"} {
		_, err := DecodeString(in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got %v", in, err)
		}
	}
}

func TestDecodeReader(t *testing.T) {
	got, err := DecodeReader(strings.NewReader(`[1, 2]`))
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := got.([]any)
	if !ok || len(arr) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeBadUTF8(t *testing.T) {
	_, err := Decode([]byte{'\'', 0xff, '\''})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
}

func TestDecodeInputEncoding(t *testing.T) {
	// caller-supplied transcoders replace the utf8 check wholesale
	latin1 := func(d []byte) (string, error) {
		rs := make([]rune, len(d))
		for i, b := range d {
			rs[i] = rune(b)
		}
		return string(rs), nil
	}
	got, err := Decode([]byte{'\'', 0xe9, '\''}, InputEncoding(latin1))
	if err != nil {
		t.Fatal(err)
	}
	if got != "\u00e9" {
		t.Errorf("got %q", got)
	}
}

func TestDecodeParseHooks(t *testing.T) {
	var bases []int
	got, err := DecodeString(`[0x10, 2, 3.5, NaN]`,
		ParseInt(func(literal string, base int) (int64, error) {
			bases = append(bases, base)
			return 7, nil
		}),
		ParseFloat(func(literal string) (float64, error) {
			return 0.5, nil
		}),
		ParseConstant(func(literal string) (float64, error) {
			return 99, nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	arr := got.([]any)
	if arr[0] != int64(7) || arr[1] != int64(7) || arr[2] != 0.5 || arr[3] != float64(99) {
		t.Errorf("got %v", arr)
	}
	if len(bases) != 2 || bases[0] != 16 || bases[1] != 10 {
		t.Errorf("got bases %v", bases)
	}
}

func TestDecodeObjectHook(t *testing.T) {
	got, err := DecodeString(`{a: {b: 1}}`,
		ObjectHook(func(obj *linkedhashmap.Map) (any, error) {
			return obj.Size(), nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	// hooks run bottom-up: the inner object is already replaced when
	// the outer one is built
	if got != 1 {
		t.Errorf("got %v", got)
	}
}

func TestDecodePairsHookDominates(t *testing.T) {
	objectHookCalled := false
	got, err := DecodeString(`{b: 1, a: 2, b: 3}`,
		PairsHook(func(pairs []Pair) (any, error) {
			keys := make([]string, len(pairs))
			for i := range pairs {
				keys[i] = pairs[i].Key
			}
			return keys, nil
		}),
		ObjectHook(func(obj *linkedhashmap.Map) (any, error) {
			objectHookCalled = true
			return nil, nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	keys, ok := got.([]string)
	if !ok {
		t.Fatalf("got %T", got)
	}
	// pairs see every member in source order, duplicates included
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "a" || keys[2] != "b" {
		t.Errorf("got %v", keys)
	}
	if objectHookCalled {
		t.Error("object hook ran under pairs hook")
	}
}

func TestDecodeIntOverflow(t *testing.T) {
	if _, err := DecodeString("9223372036854775808"); err == nil {
		t.Error("overflow decoded")
	}
	got, err := DecodeString("9223372036854775807")
	if err != nil {
		t.Fatal(err)
	}
	if got != int64(math.MaxInt64) {
		t.Errorf("got %v", got)
	}
}
