package ir

// Node is one node of a parsed JSON5 document.
//
// The payload field depends on Type: String for StringType (already
// unescaped) and for object keys, Number for NumberType (the raw source
// literal, unevaluated, so hex prefixes, signs, exponents and the
// Infinity/NaN tokens survive verbatim), Bool for BoolType.  ObjectType
// nodes hold parallel Fields/Values slices in source order; duplicate
// keys are legal here and are resolved by the decode layer.  ArrayType
// nodes hold Values only.
type Node struct {
	Type Type

	Fields []*Node
	Values []*Node

	String string
	Number string
	Bool   bool
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Number = y.Number
	dst.Bool = y.Bool
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromNumber builds a number node from a raw source literal.
func FromNumber(literal string) *Node {
	return &Node{Type: NumberType, Number: literal}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ys []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ys))
	copy(res.Values, ys)
	return res
}

// Get returns the value of the last field named field, honoring the
// last-key-wins rule for duplicate keys.
func Get(y *Node, field string) *Node {
	for i := len(y.Fields) - 1; i >= 0; i-- {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
