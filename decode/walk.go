package decode

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/json5-format/go-json5/debug"
	"github.com/json5-format/go-json5/ir"
)

// walk translates one syntax tree into a native value.  The tree is
// read-only here; every call builds a fresh value tree.
func walk(node *ir.Node, o *decodeOpts) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		return walkNumber(node.Number, o)
	case ir.ObjectType:
		return walkObject(node, o)
	case ir.ArrayType:
		vals := make([]any, len(node.Values))
		for i, el := range node.Values {
			v, err := walk(el, o)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil
	default:
		return nil, fmt.Errorf("unknown node type %s", node.Type)
	}
}

// walkNumber classifies a raw literal syntactically: hex prefix wins,
// then fraction/exponent markers, then the constant tokens; anything
// left is a decimal integer.
func walkNumber(literal string, o *decodeOpts) (any, error) {
	body := literal
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	switch {
	case strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X"):
		return o.parseInt(literal, 16)
	case strings.ContainsAny(literal, ".eE"):
		return o.parseFloat(literal)
	case strings.Contains(literal, "Infinity") || strings.Contains(literal, "NaN"):
		return o.parseConstant(literal)
	default:
		return o.parseInt(literal, 10)
	}
}

func walkObject(node *ir.Node, o *decodeOpts) (any, error) {
	pairs := make([]Pair, len(node.Fields))
	for i, field := range node.Fields {
		v, err := walk(node.Values[i], o)
		if err != nil {
			return nil, err
		}
		pairs[i] = Pair{Key: field.String, Value: v}
	}
	if o.pairsHook != nil {
		if debug.Hooks() {
			debug.Logf("pairs hook on %d members\n", len(pairs))
		}
		return o.pairsHook(pairs)
	}
	obj := linkedhashmap.New()
	for i := range pairs {
		// Put keeps the first occurrence's position and the last
		// occurrence's value
		obj.Put(pairs[i].Key, pairs[i].Value)
	}
	if o.objectHook != nil {
		if debug.Hooks() {
			debug.Logf("object hook on %d keys\n", obj.Size())
		}
		return o.objectHook(obj)
	}
	return obj, nil
}
