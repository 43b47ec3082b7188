package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "ragged").
		WithSynopsis("ragged [opts] command [opts]").
		WithDescription("ragged is a tool for mapping and folding nested documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return raggedMain(cfg, cc, args)
		}).
		WithSubs(
			MapCommand(cfg),
			DeflateCommand(cfg),
			ClassifyCommand(cfg),
			ViewCommand(cfg))
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Map, "map").
		WithAliases("m").
		WithSynopsis("map -e <expr> [opts] [files]").
		WithDescription("Rebuild documents with every leaf transformed by an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return raggedMap(cfg, cc, args)
		})
}

func DeflateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeflateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Deflate, "deflate").
		WithAliases("d", "fold").
		WithSynopsis("deflate -e <expr> [opts] [files]").
		WithDescription("Collapse documents bottom-up into one value with a combinator expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return raggedDeflate(cfg, cc, args)
		})
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Classify, "classify").
		WithAliases("c").
		WithSynopsis("classify [files]").
		WithDescription("Report kind and shape census of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return raggedClassify(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("Render documents as bracketed trees, in color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return raggedView(cfg, cc, args)
		})
}
