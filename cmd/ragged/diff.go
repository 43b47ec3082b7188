package main

import (
	"bytes"
	"io"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// writeDiff renders a character diff of the encoded before and after
// documents. With colors, insertions are green and deletions red;
// otherwise wdiff-style {+...+} and [-...-] markers are used.
func writeDiff(cfg *MainConfig, w io.Writer, before, after any) error {
	bBuf := bytes.NewBuffer(nil)
	if err := cfg.encodeDoc(bBuf, before); err != nil {
		return err
	}
	aBuf := bytes.NewBuffer(nil)
	if err := cfg.encodeDoc(aBuf, after); err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(bBuf.String(), aBuf.String(), true)
	colors := cfg.colors()
	for i := range diffs {
		diff := &diffs[i]
		var s string
		switch diff.Type {
		case diffpatch.DiffInsert:
			if colors != nil {
				s = color.GreenString("%s", diff.Text)
			} else {
				s = "{+" + diff.Text + "+}"
			}
		case diffpatch.DiffDelete:
			if colors != nil {
				s = color.RedString("%s", diff.Text)
			} else {
				s = "[-" + diff.Text + "-]"
			}
		case diffpatch.DiffEqual:
			s = diff.Text
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
