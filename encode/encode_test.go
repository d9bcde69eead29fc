package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

type encodeTest struct {
	in   any
	opts []EncodeOption
	want string
}

func lhm(kvs ...any) *linkedhashmap.Map {
	m := linkedhashmap.New()
	for i := 0; i < len(kvs); i += 2 {
		m.Put(kvs[i], kvs[i+1])
	}
	return m
}

func TestEncode(t *testing.T) {
	ets := []encodeTest{
		{in: nil, want: `null`},
		{in: true, want: `true`},
		{in: false, want: `false`},
		{in: int64(26), want: `26`},
		{in: 26, want: `26`},
		{in: uint8(7), want: `7`},
		{in: 3.0, want: `3.0`},
		{in: 0.5, want: `0.5`},
		{in: 3e25, want: `3e+25`},
		{in: float32(1.5), want: `1.5`},
		{in: "hello", want: `'hello'`},
		{in: "it's", want: `"it's"`},
		{in: `say "hi"`, want: `'say "hi"'`},
		{in: `both ' and "`, want: `"both ' and \""`},
		{in: "a\\b", want: `'a\\b'`},
		{in: "tab\there", want: `'tab\u0009here'`},
		{in: "caf\u00e9", want: `'caf\u00e9'`},
		{in: "\U0001f600", want: `'\ud83d\ude00'`},
		{in: []any{}, want: `[]`},
		{in: lhm(), want: `{}`},
		{in: []any{int64(1), "a", nil}, want: `[1, 'a', null]`},
		{in: lhm("valid_id1", int64(1), "has space", int64(2)),
			want: `{valid_id1: 1, 'has space': 2}`},
		{in: lhm("b", int64(1), "a", int64(2)),
			want: `{b: 1, a: 2}`},
		{in: lhm("b", int64(1), "a", int64(2)),
			opts: []EncodeOption{EncodeSortKeys(true)},
			want: `{a: 2, b: 1}`},
		// sorting compares the keys themselves, not their quoted
		// renderings
		{in: lhm("a b", int64(1), "Z", int64(2)),
			opts: []EncodeOption{EncodeSortKeys(true)},
			want: `{Z: 2, 'a b': 1}`},
		{in: map[string]any{"b": int64(1), "a": int64(2)},
			want: `{a: 2, b: 1}`},
		{in: "caf\u00e9",
			opts: []EncodeOption{EncodeASCII(false)},
			want: "'caf\u00e9'"},
		{in: "it's \"quoted\"",
			opts: []EncodeOption{EncodeASCII(false)},
			want: `"it's \"quoted\""`},
		{in: math.NaN(), want: `NaN`},
		{in: math.Inf(1), want: `Infinity`},
		{in: math.Inf(-1), want: `-Infinity`},
		{in: []any{int64(1), int64(2)},
			opts: []EncodeOption{EncodeSeparators(",", ":")},
			want: `[1,2]`},
		{in: lhm("a", int64(1), "b", int64(2)),
			opts: []EncodeOption{EncodeSeparators(",", ":")},
			want: `{a:1,b:2}`},
		{in: lhm(int64(-3), "neg", int64(26), "pos", nil, "null", true, "t"),
			want: `{'-3': 'neg', 26: 'pos', null: 'null', true: 't'}`},
		{in: lhm(1.5, "x"), want: `{'1.5': 'x'}`},
	}
	for i := range ets {
		et := &ets[i]
		got, err := String(et.in, et.opts...)
		if err != nil {
			t.Errorf("%v: %v", et.in, err)
			continue
		}
		if got != et.want {
			t.Errorf("%v: got %q, want %q", et.in, got, et.want)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	in := lhm("a", int64(1), "b", []any{int64(2), int64(3)}, "c", lhm())
	got, err := String(in, EncodeIndent(2))
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"{",
		"  a: 1,",
		"  b: [",
		"    2,",
		"    3",
		"  ],",
		"  c: {}",
		"}",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNonFinite(t *testing.T) {
	for _, v := range []any{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := String(v, EncodeAllowNonFinite(false)); !errors.Is(err, ErrNonFinite) {
			t.Errorf("%v: got %v", v, err)
		}
	}
	// non-finite keys honor the same policy
	_, err := String(lhm(math.NaN(), int64(1)), EncodeAllowNonFinite(false))
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("got %v", err)
	}
	got, err := String(lhm(math.Inf(-1), int64(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got != `{'-Infinity': 1}` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeCircular(t *testing.T) {
	arr := []any{nil}
	arr[0] = arr
	if _, err := String(arr); !errors.Is(err, ErrCircular) {
		t.Errorf("got %v", err)
	}

	m := linkedhashmap.New()
	m.Put("self", m)
	if _, err := String(m); !errors.Is(err, ErrCircular) {
		t.Errorf("got %v", err)
	}

	// the check is per open path: off, deep recursion trips the depth
	// limit instead
	if _, err := String(arr, EncodeCheckCircular(false)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeSiblingReuse(t *testing.T) {
	shared := []any{int64(1)}
	got, err := String([]any{shared, shared})
	if err != nil {
		t.Fatal(err)
	}
	if got != `[[1], [1]]` {
		t.Errorf("got %q", got)
	}

	// a container is legal again once closed, including across
	// top-level calls
	if _, err := String(shared); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestEncodeKeyErrs(t *testing.T) {
	in := lhm(struct{ x int }{1}, "bad", "ok", int64(2))
	if _, err := String(in); !errors.Is(err, ErrKeyType) {
		t.Errorf("got %v", err)
	}
	got, err := String(in, EncodeSkipInvalidKeys(true))
	if err != nil {
		t.Fatal(err)
	}
	if got != `{ok: 2}` {
		t.Errorf("got %q", got)
	}
}

func TestEncodeValueErr(t *testing.T) {
	_, err := String(make(chan int))
	if !errors.Is(err, ErrValueType) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeDefaultHook(t *testing.T) {
	type point struct{ x, y int64 }
	got, err := String([]any{point{1, 2}},
		EncodeDefault(func(v any) (any, error) {
			p, ok := v.(point)
			if !ok {
				return nil, errors.New("unknown")
			}
			return []any{p.x, p.y}, nil
		}))
	if err != nil {
		t.Fatal(err)
	}
	if got != `[[1, 2]]` {
		t.Errorf("got %q", got)
	}

	// hook errors surface wrapped in the value type error
	_, err = String(make(chan int),
		EncodeDefault(func(v any) (any, error) {
			return nil, errors.New("no idea")
		}))
	if !errors.Is(err, ErrValueType) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeWriterAtomic(t *testing.T) {
	arr := []any{int64(1), make(chan int)}
	buf := bytes.NewBuffer(nil)
	if err := Encode(arr, buf); err == nil {
		t.Fatal("encoded")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output %q", buf.String())
	}
}

func TestEncodeMaxDepth(t *testing.T) {
	v := any(int64(1))
	for range 40 {
		v = []any{v}
	}
	if _, err := String(v); err != nil {
		t.Errorf("depth 40: %v", err)
	}
	if _, err := String(v, EncodeMaxDepth(8)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("got %v", err)
	}
}

func TestMustString(t *testing.T) {
	if got := MustString([]any{int64(1)}); got != `[1]` {
		t.Errorf("got %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	MustString(make(chan int))
}
