package main

import (
	"fmt"
	"io"

	"github.com/json5-format/go-json5/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputFiles(args) {
		v, err := getDocFile(cc, file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		if err := viewDoc(cfg, cc.Out, v); err != nil {
			return fmt.Errorf("error encoding %q: %w", file, err)
		}
	}
	return nil
}

func viewDoc(cfg *ViewConfig, w io.Writer, v any) error {
	opts := cfg.encOpts(w)
	if cfg.Indent <= 0 {
		opts = append(opts, encode.EncodeIndent(2))
	}
	if err := encode.Encode(v, w, opts...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
