// Package walk implements structure-preserving traversals over
// arbitrarily nested, ragged, heterogeneous trees.
//
// A tree is any Go value. A classify.Policy decides, per value,
// whether it is a container to descend into or an opaque leaf; the
// default policy treats untagged slices as containers and everything
// else as leaves. Map rebuilds an isomorphic tree with every leaf
// transformed, and Deflate collapses a tree bottom-up into a single
// value with a caller-supplied combinator.
//
// Both traversals are synchronous, depth-first and strictly
// left-to-right; leaf visitation order is part of the contract. Both
// fail fast: the first error from user code aborts the whole call and
// surfaces with the index path of the failing node.
package walk

import (
	"fmt"

	"github.com/signadot/ragged/classify"
	"github.com/signadot/ragged/debug"
)

// LeafFunc transforms a single leaf value during Map.
type LeafFunc func(v any) (any, error)

// LeafFunc2 transforms a pair of leaves zipped from two trees of
// identical shape during Map2.
type LeafFunc2 func(a, b any) (any, error)

// Combine reduces the ordered, already-folded children of a container
// to a single value during Deflate. It is invoked with an empty
// argument list for empty containers, so combinators must define a
// sensible zero-argument result. Combine need not be associative or
// commutative; arguments always arrive in the children's original
// left-to-right order.
type Combine func(vals []any) (any, error)

type config struct {
	policy    classify.Policy
	noRecurse bool
}

type Opt func(*config)

// WithPolicy substitutes the classification policy used by a
// traversal. The default is classify.Default().
func WithPolicy(p classify.Policy) Opt {
	return func(c *config) {
		c.policy = p
	}
}

// WithoutRecursion selects the explicit-stack engine, whose observable
// behavior is identical to the recursive one but whose memory use does
// not grow the goroutine stack with tree depth. Intended for very deep
// or adversarially constructed inputs.
func WithoutRecursion() Opt {
	return func(c *config) {
		c.noRecurse = true
	}
}

func newConfig(opts []Opt) *config {
	cfg := &config{policy: classify.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// kindOf classifies v under p, treating any out-of-range answer as the
// fatal programming error it is: Classify is contractually total.
func kindOf(p classify.Policy, v any) classify.Kind {
	k := p.Classify(v)
	switch k {
	case classify.Leaf, classify.Container:
		return k
	}
	panic(fmt.Sprintf("walk: policy %T returned invalid kind %d for %T", p, k, v))
}

// Bind partially applies trailing arguments to a variadic leaf
// function, yielding a LeafFunc that passes them unchanged on every
// call.
func Bind(f func(v any, extra ...any) (any, error), extra ...any) LeafFunc {
	return func(v any) (any, error) {
		return f(v, extra...)
	}
}

// Map rebuilds tree with every leaf replaced by f(leaf). The result is
// isomorphic to the input: same container boundaries, arity and order
// at every position. f is invoked exactly once per leaf, in depth-first
// left-to-right order. The input tree is not mutated and no input
// container is aliased by the result.
//
// If f fails on any leaf, Map returns a *LeafError locating that leaf
// and no partial tree.
func Map(tree any, f LeafFunc, opts ...Opt) (any, error) {
	cfg := newConfig(opts)
	if cfg.noRecurse {
		return mapStack(cfg.policy, tree, f)
	}
	return mapNode(cfg.policy, tree, f, nil)
}

func mapNode(p classify.Policy, v any, f LeafFunc, path Path) (any, error) {
	switch kindOf(p, v) {
	case classify.Leaf:
		if debug.Walk() {
			debug.Logf("map leaf at %s\n", path)
		}
		res, err := f(v)
		if err != nil {
			return nil, &LeafError{Path: path.clone(), Err: err}
		}
		return res, nil
	default:
		kids := p.Children(v)
		out := make([]any, len(kids))
		for i, kid := range kids {
			r, err := mapNode(p, kid, f, append(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return p.Sequence(out), nil
	}
}

// Map2 zips a and b leaf-by-leaf: wherever a has a leaf, b must have a
// leaf at the same position, and the result holds f(leafA, leafB). The
// two trees must agree on shape; a mismatch yields an error wrapping
// ErrShape with the offending path. Map2 always uses the recursive
// engine; WithoutRecursion is ignored.
func Map2(a, b any, f LeafFunc2, opts ...Opt) (any, error) {
	cfg := newConfig(opts)
	return map2Node(cfg.policy, a, b, f, nil)
}

func map2Node(p classify.Policy, a, b any, f LeafFunc2, path Path) (any, error) {
	ka, kb := kindOf(p, a), kindOf(p, b)
	if ka != kb {
		return nil, shapeErr(path.clone(), "%s vs %s", ka, kb)
	}
	if ka == classify.Leaf {
		res, err := f(a, b)
		if err != nil {
			return nil, &LeafError{Path: path.clone(), Err: err}
		}
		return res, nil
	}
	aKids, bKids := p.Children(a), p.Children(b)
	if len(aKids) != len(bKids) {
		return nil, shapeErr(path.clone(), "%d children vs %d", len(aKids), len(bKids))
	}
	out := make([]any, len(aKids))
	for i := range aKids {
		r, err := map2Node(p, aKids[i], bKids[i], f, append(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return p.Sequence(out), nil
}

// Deflate collapses tree bottom-up into a single value. A leaf root is
// returned unchanged and combine is never invoked. For a container,
// each container child is first deflated to a single value, leaf
// children pass through untouched, and combine is then applied once to
// the ordered child values; its result becomes the container's folded
// value.
//
// The combinator's result is never re-classified: a parent container
// treats it as an already-folded value even when it happens to be
// sequence-shaped. Combinator output is conceptually flat.
//
// If combine fails on any container, Deflate returns a *CombineError
// locating that container.
func Deflate(tree any, combine Combine, opts ...Opt) (any, error) {
	cfg := newConfig(opts)
	if kindOf(cfg.policy, tree) == classify.Leaf {
		return tree, nil
	}
	if cfg.noRecurse {
		return deflateStack(cfg.policy, tree, combine)
	}
	return deflateNode(cfg.policy, tree, combine, nil)
}

func deflateNode(p classify.Policy, v any, combine Combine, path Path) (any, error) {
	kids := p.Children(v)
	vals := make([]any, len(kids))
	for i, kid := range kids {
		switch kindOf(p, kid) {
		case classify.Container:
			r, err := deflateNode(p, kid, combine, append(path, i))
			if err != nil {
				return nil, err
			}
			vals[i] = r
		default:
			vals[i] = kid
		}
	}
	if debug.Walk() {
		debug.Logf("combine %d values at %s\n", len(vals), path)
	}
	res, err := combine(vals)
	if err != nil {
		return nil, &CombineError{Path: path.clone(), Err: err}
	}
	return res, nil
}

// Leaves returns the leaves of tree in depth-first left-to-right
// order, the same order Map visits them in.
func Leaves(tree any, opts ...Opt) []any {
	cfg := newConfig(opts)
	var res []any
	eachLeaf(cfg.policy, tree, func(v any) {
		res = append(res, v)
	})
	return res
}

func eachLeaf(p classify.Policy, v any, f func(any)) {
	if kindOf(p, v) == classify.Leaf {
		f(v)
		return
	}
	for _, kid := range p.Children(v) {
		eachLeaf(p, kid, f)
	}
}

// Census summarizes the shape of a tree.
type Census struct {
	Leaves     int
	Containers int
	MaxDepth   int
}

// Count walks tree and tallies leaves, containers and the maximum
// nesting depth. A bare leaf has depth 0.
func Count(tree any, opts ...Opt) Census {
	cfg := newConfig(opts)
	res := Census{}
	countNode(cfg.policy, tree, 0, &res)
	return res
}

func countNode(p classify.Policy, v any, depth int, c *Census) {
	if depth > c.MaxDepth {
		c.MaxDepth = depth
	}
	if kindOf(p, v) == classify.Leaf {
		c.Leaves++
		return
	}
	c.Containers++
	for _, kid := range p.Children(v) {
		countNode(p, kid, depth+1, c)
	}
}
