package main

import (
	"fmt"
	"io"
	"os"

	"github.com/json5-format/go-json5/decode"
	"github.com/json5-format/go-json5/encode"
	"github.com/json5-format/go-json5/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Indent int  `cli:"name=i aliases=indent desc='indent output with this many spaces per level'"`
	Sort   bool `cli:"name=sort desc='sort object keys in output'"`
	Raw    bool `cli:"name=raw desc='emit non-ascii characters verbatim instead of escapes'"`
	Color  bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output strict json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// outFormat resolves the output format: -O wins, then the -j/-y
// shorthands, then JSON5.
func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	}
	return format.JSON5Format
}

func (cfg *MainConfig) decOpts() []decode.DecodeOption {
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Sort {
		res = append(res, encode.EncodeSortKeys(true))
	}
	if cfg.Raw {
		res = append(res, encode.EncodeASCII(false))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Unified bool `cli:"name=u desc='output a unified patch instead of inline diffs'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='patch arg is a file path'"`

	Patch *cli.Command
}
