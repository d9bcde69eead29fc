package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/json5-format/go-json5/encode"

	"github.com/scott-cotton/cli"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/goccy/go-yaml"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputFiles(args) {
		v, err := getDocFile(cc, file, cfg.decOpts()...)
		if err != nil {
			return err
		}
		if err := dumpDoc(cfg, cc.Out, v); err != nil {
			return fmt.Errorf("error encoding %q: %w", file, err)
		}
	}
	return nil
}

func dumpDoc(cfg *DumpConfig, w io.Writer, v any) error {
	switch f := cfg.outFormat(); {
	case f.IsJSON():
		return dumpJSON(cfg, w, v)
	case f.IsYAML():
		d, err := yaml.Marshal(toYAML(v))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		_, err := w.Write([]byte("\n"))
		return err
	}
}

func dumpJSON(cfg *DumpConfig, w io.Writer, v any) error {
	d, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if cfg.Indent > 0 {
		buf := bytes.NewBuffer(nil)
		if err := json.Indent(buf, d, "", strings.Repeat(" ", cfg.Indent)); err != nil {
			return err
		}
		d = buf.Bytes()
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

// toYAML rewrites ordered mappings as yaml.MapSlice values so the
// YAML serializer keeps member order.
func toYAML(v any) any {
	switch t := v.(type) {
	case *linkedhashmap.Map:
		ms := make(yaml.MapSlice, 0, t.Size())
		it := t.Iterator()
		for it.Next() {
			ms = append(ms, yaml.MapItem{
				Key:   it.Key(),
				Value: toYAML(it.Value()),
			})
		}
		return ms
	case []any:
		vals := make([]any, len(t))
		for i, e := range t {
			vals[i] = toYAML(e)
		}
		return vals
	default:
		return v
	}
}
