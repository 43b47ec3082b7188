package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func raggedMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// eachDoc runs fn over every document in the argument files, or stdin
// when none are given. Documents within a file are separated by
// "\n---\n" lines.
func eachDoc(cc *cli.Context, args []string, fn func(i int, doc []byte) error) error {
	if len(args) == 0 {
		return eachReaderDoc(cc.In, fn)
	}
	for _, file := range args {
		var (
			f   *os.File
			err error
		)
		if file != "-" {
			f, err = os.Open(file)
			if err != nil {
				return fmt.Errorf("could not open %q: %w", file, err)
			}
		} else {
			f = os.Stdin
		}
		err = eachReaderDoc(f, fn)
		if file != "-" {
			f.Close()
		}
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

func eachReaderDoc(r io.Reader, fn func(i int, doc []byte) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	for i, doc := range docs {
		if err := fn(i, doc); err != nil {
			return err
		}
	}
	return nil
}

func docSep(w io.Writer, i int) {
	if i > 0 {
		w.Write([]byte("---\n"))
	}
}
