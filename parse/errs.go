package parse

import (
	"errors"
	"fmt"
)

var (
	errInternal = errors.New("internal parse error")

	ErrParse   = errors.New("parse error")
	ErrEmpty   = fmt.Errorf("%w: empty document", ErrParse)
	ErrTooDeep = fmt.Errorf("%w: document nested too deeply", ErrParse)
)
