package parse

import (
	"errors"
	"testing"

	"github.com/json5-format/go-json5/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `1e14`},
		{in: `0x1A`},
		{in: `-Infinity`},
		{in: `"hello"`},
		{in: `'hello'`},
		{in: `{}`},
		{in: `[]`},
		{in: `[1,]`},
		{in: `{a: 1,}`},
		{in: `{Infinity: 1, NaN: 2}`},
		{in: `{'a b': 1, "c": 2}`},
		{in: `{null: 1, true: 2, false: 3}`},
		{in: "{$_id: 1, \u00fcber: 2}"},
		{in: `[[], [1, [2, 3]], {a: [4]}]`},
		{in: "// leading\n{a: 1 /* inline */, b: 2} // trailing"},
		{in: "{\n  a: 1,\n  b: 2,\n}"},
	}
	for i := range pts {
		pt := &pts[i]
		if _, err := Parse([]byte(pt.in)); err != nil {
			t.Errorf("# doc\n%s\n# error %v", pt.in, err)
		}
	}
}

func TestParseErrs(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrEmpty},
		{in: " \t\n// only a comment\n", e: ErrEmpty},
		{in: `{`, e: ErrParse},
		{in: `[1, 2`, e: ErrParse},
		{in: `{a}`, e: ErrParse},
		{in: `{a: b}`, e: ErrParse},
		{in: `{a:}`, e: ErrParse},
		{in: `{,}`, e: ErrParse},
		{in: `[,]`, e: ErrParse},
		{in: `[1 2]`, e: ErrParse},
		{in: `{a: 1 b: 2}`, e: ErrParse},
		{in: `{1: 2}`, e: ErrParse},
		{in: `1 2`, e: ErrParse},
		{in: `{} {}`, e: ErrParse},
	}
	for i := range pts {
		pt := &pts[i]
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: parsed, want %v", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseTree(t *testing.T) {
	node, err := Parse([]byte(`{hex: 0x1A, hex: 2, 'q': [true, null]}`))
	if err != nil {
		t.Fatal(err)
	}
	if node.Type != ir.ObjectType {
		t.Fatalf("got %s", node.Type)
	}
	// duplicates stay in the tree
	if len(node.Fields) != 3 {
		t.Fatalf("got %d fields", len(node.Fields))
	}
	// raw literal survives; Get resolves duplicates to the last value
	if got := ir.Get(node, "hex"); got == nil || got.Number != "2" {
		t.Errorf("got %v", got)
	}
	if node.Values[0].Number != "0x1A" {
		t.Errorf("got %q", node.Values[0].Number)
	}
	arr := ir.Get(node, "q")
	if arr == nil || arr.Type != ir.ArrayType || len(arr.Values) != 2 {
		t.Fatalf("got %v", arr)
	}
	if arr.Values[0].Type != ir.BoolType || !arr.Values[0].Bool {
		t.Errorf("got %v", arr.Values[0])
	}
	if arr.Values[1].Type != ir.NullType {
		t.Errorf("got %v", arr.Values[1])
	}
}

func TestParseDepthLimit(t *testing.T) {
	d := []byte{}
	for range 40 {
		d = append(d, '[')
	}
	d = append(d, '1')
	for range 40 {
		d = append(d, ']')
	}
	if _, err := Parse(d); err != nil {
		t.Errorf("depth 40: %v", err)
	}
	if _, err := Parse(d, MaxDepth(8)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("got %v, want %v", err, ErrTooDeep)
	}
}
