package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/json5-format/go-json5/ir"
)

// DefaultMaxDepth bounds encoder recursion independently of circular
// detection, which cannot see acyclic but very deep values.
const DefaultMaxDepth = 512

// EncState carries the policy and per-call state of one top-level
// encode.  It is created fresh per call; the open-container set never
// leaks between calls.
type EncState struct {
	depth    int
	indent   int
	indented bool

	itemSep string
	keySep  string
	sepsSet bool

	sortKeys       bool
	asciiOnly      bool
	checkCircular  bool
	allowNonFinite bool
	skipKeys       bool
	maxDepth       int

	defaultHook func(v any) (any, error)

	open map[uintptr]struct{}

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		itemSep:        ", ",
		keySep:         ": ",
		asciiOnly:      true,
		checkCircular:  true,
		allowNonFinite: true,
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indented && !es.sepsSet {
		// indented members already split across lines; the compact
		// default ", " would leave trailing blanks
		es.itemSep = ","
	}
	es.open = map[uintptr]struct{}{}
	return es
}

// Encode renders v as JSON5 text on w.  Output is buffered: on error
// nothing is written, w never sees a partial document.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	if err := encode(v, buf, es); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// String renders v as JSON5 text.
func String(v any, opts ...EncodeOption) (string, error) {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	if err := encode(v, buf, es); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Main encode dispatch, one textual fragment per call.

func encode(v any, b *bytes.Buffer, es *EncState) error {
	switch t := v.(type) {
	case nil:
		writeColored(b, es, ir.NullType, ValueColor, "null")
	case bool:
		writeColored(b, es, ir.BoolType, ValueColor, strconv.FormatBool(t))
	case string:
		writeColored(b, es, ir.StringType, ValueColor, quoteString(t, es))
	case int:
		writeInt(b, es, int64(t))
	case int8:
		writeInt(b, es, int64(t))
	case int16:
		writeInt(b, es, int64(t))
	case int32:
		writeInt(b, es, int64(t))
	case int64:
		writeInt(b, es, t)
	case uint:
		writeUint(b, es, uint64(t))
	case uint8:
		writeUint(b, es, uint64(t))
	case uint16:
		writeUint(b, es, uint64(t))
	case uint32:
		writeUint(b, es, uint64(t))
	case uint64:
		writeUint(b, es, t)
	case float32:
		return encodeFloat(float64(t), 32, b, es)
	case float64:
		return encodeFloat(t, 64, b, es)
	case *linkedhashmap.Map:
		return encodeObject(t, b, es)
	case map[string]any:
		return encodeGoMap(t, b, es)
	case []any:
		return encodeArray(t, b, es)
	default:
		return encodeFallback(v, b, es)
	}
	return nil
}

func writeInt(b *bytes.Buffer, es *EncState, v int64) {
	writeColored(b, es, ir.NumberType, ValueColor, strconv.FormatInt(v, 10))
}

func writeUint(b *bytes.Buffer, es *EncState, v uint64) {
	writeColored(b, es, ir.NumberType, ValueColor, strconv.FormatUint(v, 10))
}

// Float encoding

func encodeFloat(f float64, bits int, b *bytes.Buffer, es *EncState) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !es.allowNonFinite {
			return fmt.Errorf("%w: %v", ErrNonFinite, f)
		}
		tok := "NaN"
		switch {
		case math.IsInf(f, 1):
			tok = "Infinity"
		case math.IsInf(f, -1):
			tok = "-Infinity"
		}
		writeColored(b, es, ir.NumberType, ValueColor, tok)
		return nil
	}
	writeColored(b, es, ir.NumberType, ValueColor, formatFloat(f, bits))
	return nil
}

// formatFloat produces the shortest round-trippable decimal form,
// keeping a fraction or exponent marker so the literal re-decodes as a
// float rather than an integer.
func formatFloat(f float64, bits int) string {
	v := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

// Object encoding

// member pairs a rendered key with its value; raw holds the key's
// plain text so sorted output orders by the key itself, not by its
// quoted rendering.
type member struct {
	raw string
	key string
	val any
}

func encodeObject(m *linkedhashmap.Map, b *bytes.Buffer, es *EncState) error {
	if err := es.enter(m); err != nil {
		return err
	}
	defer es.leave(m)
	keys := m.Keys()
	members := make([]member, 0, len(keys))
	for _, k := range keys {
		raw, ks, ok, err := renderKey(k, es)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		v, _ := m.Get(k)
		members = append(members, member{raw: raw, key: ks, val: v})
	}
	return writeMembers(members, b, es)
}

func encodeGoMap(m map[string]any, b *bytes.Buffer, es *EncState) error {
	if err := es.enter(m); err != nil {
		return err
	}
	defer es.leave(m)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	if !es.sortKeys {
		// plain Go maps have no iteration order to honor; sorted
		// output at least keeps repeated encodes identical
		sort.Strings(keys)
	}
	members := make([]member, 0, len(keys))
	for _, k := range keys {
		members = append(members, member{raw: k, key: renderStringKey(k, es), val: m[k]})
	}
	return writeMembers(members, b, es)
}

func writeMembers(members []member, b *bytes.Buffer, es *EncState) error {
	if es.sortKeys {
		sort.Slice(members, func(i, j int) bool {
			return members[i].raw < members[j].raw
		})
	}
	n := len(members)
	if n == 0 {
		writeColored(b, es, ir.ObjectType, SepColor, "{}")
		return nil
	}
	writeColored(b, es, ir.ObjectType, SepColor, "{")
	es.depth++
	writePad(b, es)
	for i := range members {
		writeColored(b, es, ir.ObjectType, FieldColor, members[i].key)
		writeColored(b, es, ir.ObjectType, SepColor, es.keySep)
		if err := encode(members[i].val, b, es); err != nil {
			return err
		}
		if i < n-1 {
			writeColored(b, es, ir.ObjectType, SepColor, es.itemSep)
			writePad(b, es)
		}
	}
	es.depth--
	writePad(b, es)
	writeColored(b, es, ir.ObjectType, SepColor, "}")
	return nil
}

// Array encoding

func encodeArray(vals []any, b *bytes.Buffer, es *EncState) error {
	if err := es.enter(vals); err != nil {
		return err
	}
	defer es.leave(vals)
	n := len(vals)
	if n == 0 {
		writeColored(b, es, ir.ArrayType, SepColor, "[]")
		return nil
	}
	writeColored(b, es, ir.ArrayType, SepColor, "[")
	es.depth++
	writePad(b, es)
	for i, v := range vals {
		if err := encode(v, b, es); err != nil {
			return err
		}
		if i < n-1 {
			writeColored(b, es, ir.ArrayType, SepColor, es.itemSep)
			writePad(b, es)
		}
	}
	es.depth--
	writePad(b, es)
	writeColored(b, es, ir.ArrayType, SepColor, "]")
	return nil
}

// Fallback for unrecognized types

func encodeFallback(v any, b *bytes.Buffer, es *EncState) error {
	if es.defaultHook == nil {
		return fmt.Errorf("%w: %T", ErrValueType, v)
	}
	sub, err := es.defaultHook(v)
	if err != nil {
		return fmt.Errorf("%w: %T: %w", ErrValueType, v, err)
	}
	return encode(sub, b, es)
}

// Open-container tracking: push on entry, pop on exit, so sibling
// reuse of one container is legal and only ancestor cycles fail.

func (es *EncState) enter(container any) error {
	if es.depth >= es.maxDepth {
		return ErrTooDeep
	}
	if !es.checkCircular {
		return nil
	}
	id := reflect.ValueOf(container).Pointer()
	if _, isOpen := es.open[id]; isOpen {
		return fmt.Errorf("%w: container contains itself", ErrCircular)
	}
	es.open[id] = struct{}{}
	return nil
}

func (es *EncState) leave(container any) {
	if !es.checkCircular {
		return
	}
	delete(es.open, reflect.ValueOf(container).Pointer())
}

// Writing helpers

func writePad(b *bytes.Buffer, es *EncState) {
	if !es.indented {
		return
	}
	b.WriteByte('\n')
	for range es.indent * es.depth {
		b.WriteByte(' ')
	}
}

func writeColored(b *bytes.Buffer, es *EncState, t ir.Type, attr ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	b.WriteString(s)
}
