package encode

import "errors"

var (
	// ErrCircular reports a container that contains itself, directly
	// or transitively; such a graph has no finite text.
	ErrCircular = errors.New("circular reference")

	// ErrNonFinite reports a NaN or infinite float encountered while
	// AllowNonFinite is off.
	ErrNonFinite = errors.New("non-finite number")

	// ErrKeyType reports a mapping key whose native type is not one
	// of string, integer, float, bool or nil.
	ErrKeyType = errors.New("unsupported key type")

	// ErrValueType reports a value no native rule nor the default
	// hook could render.
	ErrValueType = errors.New("unsupported value type")

	// ErrTooDeep reports nesting beyond the configured depth limit.
	ErrTooDeep = errors.New("value nested too deeply")
)
