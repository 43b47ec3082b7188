package main

import (
	"fmt"

	"github.com/signadot/ragged/eval"
	"github.com/signadot/ragged/walk"

	"github.com/scott-cotton/cli"
)

func raggedDeflate(cfg *DeflateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Deflate.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := requireExpr(cfg.Expr); err != nil {
		return err
	}
	combine, err := eval.Combine(cfg.Expr)
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
		res, err := walk.Deflate(v, combine, wOpts...)
		if err != nil {
			return fmt.Errorf("error deflating document %d: %w", i, err)
		}
		docSep(cc.Out, i)
		return cfg.encodeDoc(cc.Out, res)
	})
}
