package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/json5-format/go-json5/decode"
	"github.com/json5-format/go-json5/encode"

	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops, err := loadPatch(cfg, args[0])
	if err != nil {
		return err
	}
	for _, file := range inputFiles(args[1:]) {
		doc, err := getDocFile(cc, file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		res, err := applyPatch(ops, doc)
		if err != nil {
			return fmt.Errorf("error patching %q: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		if _, err := cc.Out.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

// loadPatch reads the patch argument, a JSON5 array of RFC 6902
// operations given inline or, with -f, as a file path.
func loadPatch(cfg *PatchConfig, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if cfg.File {
		var err error
		d, err = os.ReadFile(arg)
		if err != nil {
			return nil, fmt.Errorf("could not read patch %q: %w", arg, err)
		}
	}
	v, err := decode.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	jd, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(jd)
	if err != nil {
		return nil, fmt.Errorf("bad patch: %w", err)
	}
	return ops, nil
}

// applyPatch round-trips the document through strict JSON, applies
// the operations there and decodes the result back to native values.
func applyPatch(ops jsonpatch.Patch, doc any) (any, error) {
	jd, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(jd)
	if err != nil {
		return nil, err
	}
	return decode.Decode(out)
}
