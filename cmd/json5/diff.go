package main

import (
	"fmt"

	"github.com/json5-format/go-json5/encode"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := canonFile(cfg, cc, args[0])
	if err != nil {
		return err
	}
	b, err := canonFile(cfg, cc, args[1])
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	if !hasChange(diffs) {
		return nil
	}
	if cfg.Unified {
		patches := dmp.PatchMake(a, diffs)
		fmt.Fprint(cc.Out, dmp.PatchToText(patches))
	} else {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	}
	return cli.ExitCodeErr(1)
}

// canonFile renders the document in path in a canonical form, sorted
// and indented, so the text diff tracks structure rather than layout.
func canonFile(cfg *DiffConfig, cc *cli.Context, path string) (string, error) {
	v, err := getDocFile(cc, path, cfg.decOpts()...)
	if err != nil {
		return "", err
	}
	return encode.String(v,
		encode.EncodeSortKeys(true),
		encode.EncodeIndent(2))
}

func hasChange(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}
