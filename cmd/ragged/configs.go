package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/ragged/encode"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render output with color'"`

	J bool `cli:"name=j aliases=json desc='do output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do output in yaml (default)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// decodeDoc reads one YAML or JSON document into a tree of []any
// containers and scalar leaves.
func decodeDoc(doc []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(doc, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (cfg *MainConfig) encodeDoc(w io.Writer, v any) error {
	if cfg.J {
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func (cfg *MainConfig) colors() *encode.Colors {
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		return encode.NewColors()
	}
	return nil
}

type MapConfig struct {
	*MainConfig
	Expr  string `cli:"name=e aliases=expr desc='leaf expression, leaf bound to x'"`
	Diff  bool   `cli:"name=diff desc='show a diff of input vs mapped output'"`
	Stack bool   `cli:"name=stack desc='use the explicit-stack engine'"`

	Map *cli.Command
}

type DeflateConfig struct {
	*MainConfig
	Expr  string `cli:"name=e aliases=expr desc='combinator expression, children bound to xs'"`
	Stack bool   `cli:"name=stack desc='use the explicit-stack engine'"`

	Deflate *cli.Command
}

type ClassifyConfig struct {
	*MainConfig

	Classify *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func requireExpr(e string) error {
	if e == "" {
		return fmt.Errorf("%w: -e <expr> is required", cli.ErrUsage)
	}
	return nil
}
