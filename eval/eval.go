// Package eval compiles expression strings into leaf functions and
// combinators for walk traversals. Expressions use the expr language;
// leaf functions see the leaf as x, combinators see the ordered child
// values as xs.
package eval

import (
	"github.com/signadot/ragged/debug"
	"github.com/signadot/ragged/walk"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// LeafFunc compiles src into a walk.LeafFunc. The expression sees the
// leaf value as x, for example "x * 2" or "upper(x)".
func LeafFunc(src string) (walk.LeafFunc, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return func(v any) (any, error) {
		if debug.Eval() {
			debug.Logf("eval %q on leaf %v\n", src, v)
		}
		return run(prg, map[string]any{"x": v})
	}, nil
}

// Combine compiles src into a walk.Combine. The expression sees the
// ordered, already-folded child values as xs, for example "concat(xs)"
// or "sum(xs)".
func Combine(src string) (walk.Combine, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, err
	}
	return func(vals []any) (any, error) {
		if debug.Eval() {
			debug.Logf("eval %q on %d values\n", src, len(vals))
		}
		return run(prg, map[string]any{"xs": vals})
	}, nil
}

func run(prg *vm.Program, env map[string]any) (any, error) {
	return expr.Run(prg, env)
}
