package eval

import (
	"github.com/signadot/ragged/classify"
	"github.com/signadot/ragged/walk"

	"github.com/expr-lang/expr"
)

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("concat", func(params ...any) (any, error) {
			return Concat(params[0].([]any)), nil
		},
			new(func([]any) []any)),
		expr.Function("kind", func(params ...any) (any, error) {
			return classify.Default().Classify(params[0]).String(), nil
		},
			new(func(any) string)),
		expr.Function("leaves", func(params ...any) (any, error) {
			return walk.Leaves(params[0]), nil
		},
			new(func(any) []any)),
	}
}

// Concat flattens one level: slice-shaped values contribute their
// elements in order, everything else contributes itself. With no
// values it returns the empty sequence, making it usable as a
// combinator identity for empty containers.
func Concat(vals []any) []any {
	res := []any{}
	p := classify.Default()
	for _, v := range vals {
		if p.Classify(v) == classify.Container {
			res = append(res, p.Children(v)...)
			continue
		}
		res = append(res, v)
	}
	return res
}
