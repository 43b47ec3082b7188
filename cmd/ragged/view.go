package main

import (
	"fmt"

	"github.com/signadot/ragged/encode"

	"github.com/scott-cotton/cli"
)

func raggedView(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var eOpts []encode.EncodeOption
	if colors := cfg.colors(); colors != nil {
		eOpts = append(eOpts, encode.EncodeColors(colors))
	}
	return eachDoc(cc, args, func(i int, doc []byte) error {
		v, err := decodeDoc(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		docSep(cc.Out, i)
		return encode.Encode(v, cc.Out, eOpts...)
	})
}
