package eval

import (
	"testing"

	"github.com/signadot/ragged/walk"

	"github.com/google/go-cmp/cmp"
)

func TestLeafFunc(t *testing.T) {
	f, err := LeafFunc("x * 2")
	if err != nil {
		t.Fatal(err)
	}
	got, err := walk.Map([]any{1, []any{2, 3}}, f)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{2, []any{4, 6}}, got); d != "" {
		t.Errorf("map mismatch (-want +got):\n%s", d)
	}
}

func TestLeafFuncKind(t *testing.T) {
	f, err := LeafFunc("kind(x)")
	if err != nil {
		t.Fatal(err)
	}
	got, err := f(42)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Leaf" {
		t.Errorf("kind(42) = %v, want Leaf", got)
	}
}

func TestLeafFuncCompileError(t *testing.T) {
	if _, err := LeafFunc("x +"); err == nil {
		t.Errorf("expected compile error")
	}
}

func TestLeafFuncRunError(t *testing.T) {
	f, err := LeafFunc("x.missing.deeply")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f(42); err == nil {
		t.Errorf("expected run error")
	}
}

func TestCombineConcat(t *testing.T) {
	combine, err := Combine("concat(xs)")
	if err != nil {
		t.Fatal(err)
	}
	tree := []any{1, []any{[]any{2, 3}, 4, []any{[]any{5, 6}}, 7}}
	got, err := walk.Deflate(tree, combine)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{1, 2, 3, 4, 5, 6, 7}, got); d != "" {
		t.Errorf("deflate mismatch (-want +got):\n%s", d)
	}
}

func TestCombineEmpty(t *testing.T) {
	combine, err := Combine("concat(xs)")
	if err != nil {
		t.Fatal(err)
	}
	got, err := walk.Deflate([]any{}, combine)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]any{}, got); d != "" {
		t.Errorf("deflate mismatch (-want +got):\n%s", d)
	}
}

type record []any

func (r record) Tag() string { return "record" }

func TestConcatTagged(t *testing.T) {
	r := record{"a", "b"}
	got := Concat([]any{1, []any{2}, r})
	if d := cmp.Diff([]any{1, 2, r}, got); d != "" {
		t.Errorf("concat flattened a tagged value (-want +got):\n%s", d)
	}
}
