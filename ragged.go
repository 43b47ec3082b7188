// Package ragged provides traversal utilities for arbitrarily nested,
// ragged, heterogeneous trees of Go values.
//
// A tree is any value; untagged slices are containers, everything else
// is a leaf. Values implementing classify.Tagged are always leaves,
// however they are shaped. The functions here apply the default
// classification policy; pass walk.WithPolicy to substitute another.
//
//	doubled, err := ragged.MapLeaves(tree, func(v any) (any, error) {
//	    return v.(int) * 2, nil
//	})
//	flat, err := ragged.Deflate(tree, ragged.Concat)
package ragged

import (
	"github.com/signadot/ragged/classify"
	"github.com/signadot/ragged/eval"
	"github.com/signadot/ragged/walk"
)

// Classify reports whether v is a container or a leaf under the
// default policy.
func Classify(v any) classify.Kind {
	return classify.Default().Classify(v)
}

// MapLeaves rebuilds tree with every leaf replaced by f(leaf),
// preserving container boundaries, arity and order. See walk.Map.
func MapLeaves(tree any, f walk.LeafFunc, opts ...walk.Opt) (any, error) {
	return walk.Map(tree, f, opts...)
}

// Deflate collapses tree bottom-up into a single value using combine.
// See walk.Deflate.
func Deflate(tree any, combine walk.Combine, opts ...walk.Opt) (any, error) {
	return walk.Deflate(tree, combine, opts...)
}

// Concat is a ready-made combinator that concatenates its arguments
// into one flat sequence, flattening slice-shaped values one level.
func Concat(vals []any) (any, error) {
	return eval.Concat(vals), nil
}
