package main

import (
	"fmt"

	"github.com/signadot/ragged/eval"
	"github.com/signadot/ragged/walk"

	"github.com/scott-cotton/cli"
)

func raggedMap(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := requireExpr(cfg.Expr); err != nil {
		return err
	}
	f, err := eval.LeafFunc(cfg.Expr)
	if err != nil {
		return fmt.Errorf("bad expression %q: %w", cfg.Expr, err)
	}
	var wOpts []walk.Opt
	if cfg.Stack {
		wOpts = append(wOpts, walk.WithoutRecursion())
	}
	return eachDoc(cc, args, func(i int, doc []byte) error {
		v, err := decodeDoc(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res, err := walk.Map(v, f, wOpts...)
		if err != nil {
			return fmt.Errorf("error mapping document %d: %w", i, err)
		}
		docSep(cc.Out, i)
		if cfg.Diff {
			return writeDiff(cfg.MainConfig, cc.Out, v, res)
		}
		return cfg.encodeDoc(cc.Out, res)
	})
}
