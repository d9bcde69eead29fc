package parse

// DefaultMaxDepth bounds nesting so hostile input exhausts an error
// path, not the call stack.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
}

type ParseOption func(*parseOpts)

// MaxDepth overrides the nesting depth limit.  v <= 0 restores the
// default.
func MaxDepth(v int) ParseOption {
	return func(o *parseOpts) {
		if v <= 0 {
			v = DefaultMaxDepth
		}
		o.maxDepth = v
	}
}
