package main

import (
	"fmt"
	"io"
	"os"

	"github.com/json5-format/go-json5/decode"

	"github.com/scott-cotton/cli"
)

// getDocFile decodes the JSON5 document in path, reading cc.In when
// path is "-".
func getDocFile(cc *cli.Context, path string, opts ...decode.DecodeOption) (any, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	v, err := decode.Decode(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return v, nil
}

// inputFiles defaults an empty argument list to stdin.
func inputFiles(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
