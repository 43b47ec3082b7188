package main

import (
	"fmt"

	"github.com/signadot/ragged"
	"github.com/signadot/ragged/walk"

	"github.com/scott-cotton/cli"
)

func raggedClassify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cc, args, func(i int, doc []byte) error {
		v, err := decodeDoc(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		census := walk.Count(v)
		docSep(cc.Out, i)
		fmt.Fprintf(cc.Out, "kind: %s\n", ragged.Classify(v))
		fmt.Fprintf(cc.Out, "leaves: %d\n", census.Leaves)
		fmt.Fprintf(cc.Out, "containers: %d\n", census.Containers)
		fmt.Fprintf(cc.Out, "maxDepth: %d\n", census.MaxDepth)
		return nil
	})
}
