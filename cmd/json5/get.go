package main

import (
	"fmt"

	"github.com/json5-format/go-json5/decode"
	"github.com/json5-format/go-json5/encode"

	"github.com/scott-cotton/cli"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/expr-lang/expr"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	opts := append(cfg.decOpts(), decode.ObjectHook(plainMap))
	for _, file := range inputFiles(args[1:]) {
		doc, err := getDocFile(cc, file, opts...)
		if err != nil {
			return err
		}
		res, err := expr.Eval(src, exprEnv(doc))
		if err != nil {
			return fmt.Errorf("error evaluating %q against %q: %w", src, file, err)
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

// exprEnv exposes the document as "doc" plus, for object documents,
// each top-level member as a variable of its own.
func exprEnv(doc any) map[string]any {
	env := map[string]any{"doc": doc}
	m, ok := doc.(map[string]any)
	if !ok {
		return env
	}
	for k, v := range m {
		if k == "doc" {
			continue
		}
		env[k] = v
	}
	return env
}

// plainMap is an object hook replacing ordered mappings with plain Go
// maps, which is what expression evaluation wants.  Values are
// already converted by the time the hook runs.
func plainMap(m *linkedhashmap.Map) (any, error) {
	plain := make(map[string]any, m.Size())
	it := m.Iterator()
	for it.Next() {
		k, ok := it.Key().(string)
		if !ok {
			return nil, fmt.Errorf("non-string key %v", it.Key())
		}
		plain[k] = it.Value()
	}
	return plain, nil
}
