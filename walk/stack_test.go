package walk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// The explicit-stack engines must be observably identical to the
// recursive ones.
func TestStackEngineEquivalence(t *testing.T) {
	trees := []any{
		42,
		[]any{},
		[]any{1, "a", nil},
		[]any{[]any{1, 2}, []any{}, []any{[]any{[]any{3}}}},
		[]any{1, []any{[]any{2, 3}, 4, []any{[]any{5, 6}}, 7}},
	}
	for _, tree := range trees {
		recGot, recErr := Map(tree, ident)
		stkGot, stkErr := Map(tree, ident, WithoutRecursion())
		if (recErr == nil) != (stkErr == nil) {
			t.Fatalf("map error mismatch: %v vs %v", recErr, stkErr)
		}
		if d := cmp.Diff(recGot, stkGot); d != "" {
			t.Errorf("map engine mismatch (-recursive +stack):\n%s", d)
		}

		recGot, recErr = Deflate(tree, concat)
		stkGot, stkErr = Deflate(tree, concat, WithoutRecursion())
		if (recErr == nil) != (stkErr == nil) {
			t.Fatalf("deflate error mismatch: %v vs %v", recErr, stkErr)
		}
		if d := cmp.Diff(recGot, stkGot); d != "" {
			t.Errorf("deflate engine mismatch (-recursive +stack):\n%s", d)
		}
	}
}

func TestStackMapOrder(t *testing.T) {
	tree := []any{[]any{1, 2}, 3, []any{[]any{4}, 5}}
	var visited []any
	_, err := Map(tree, func(v any) (any, error) {
		visited = append(visited, v)
		return v, nil
	}, WithoutRecursion())
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{1, 2, 3, 4, 5}, visited); d != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", d)
	}
}

func TestStackErrorPaths(t *testing.T) {
	boom := errors.New("boom")
	tree := []any{[]any{1, 2}, 3}
	_, err := Map(tree, func(v any) (any, error) {
		if v == 2 {
			return nil, boom
		}
		return v, nil
	}, WithoutRecursion())
	leafErr := &LeafError{}
	if !errors.As(err, &leafErr) {
		t.Fatalf("expected *LeafError, got %v", err)
	}
	if d := cmp.Diff(Path{0, 1}, leafErr.Path); d != "" {
		t.Errorf("map error path mismatch (-want +got):\n%s", d)
	}

	_, err = Deflate([]any{1, []any{[]any{5}}}, func(vals []any) (any, error) {
		if len(vals) == 1 && vals[0] == 5 {
			return nil, boom
		}
		return concat(vals)
	}, WithoutRecursion())
	combErr := &CombineError{}
	if !errors.As(err, &combErr) {
		t.Fatalf("expected *CombineError, got %v", err)
	}
	if d := cmp.Diff(Path{1, 0}, combErr.Path); d != "" {
		t.Errorf("deflate error path mismatch (-want +got):\n%s", d)
	}
}

func TestStackDeepTree(t *testing.T) {
	const depth = 200000
	tree := any(1)
	for i := 0; i < depth; i++ {
		tree = []any{tree}
	}
	got, err := Map(tree, double, WithoutRecursion())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < depth; i++ {
		vs, ok := got.([]any)
		if !ok || len(vs) != 1 {
			t.Fatalf("depth %d: expected singleton container, got %T", i, got)
		}
		got = vs[0]
	}
	if got != 2 {
		t.Errorf("deep leaf = %v, want 2", got)
	}

	folded, err := Deflate(tree, func(vals []any) (any, error) {
		return vals[0], nil
	}, WithoutRecursion())
	if err != nil {
		t.Fatal(err)
	}
	if folded != 1 {
		t.Errorf("deep deflate = %v, want 1", folded)
	}
}

func TestStackLeafRoot(t *testing.T) {
	got, err := Map(42, double, WithoutRecursion())
	if err != nil {
		t.Fatal(err)
	}
	if got != 84 {
		t.Errorf("Map(42) = %v, want 84", got)
	}
	_, err = Map("nan", double, WithoutRecursion())
	leafErr := &LeafError{}
	if !errors.As(err, &leafErr) {
		t.Fatalf("expected *LeafError, got %v", err)
	}
	if len(leafErr.Path) != 0 {
		t.Errorf("root leaf error path = %s, want $", leafErr.Path)
	}
}
