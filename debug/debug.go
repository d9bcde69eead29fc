// Package debug gates tracing output on JSON5_DEBUG_* environment
// variables.  It is for developing the codec itself, not part of the
// public surface.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Hooks  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("JSON5_DEBUG_TOKENS")
	d.Parse = boolEnv("JSON5_DEBUG_PARSE")
	d.Hooks = boolEnv("JSON5_DEBUG_HOOKS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Hooks() bool {
	return d.Hooks
}
