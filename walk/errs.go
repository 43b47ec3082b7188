package walk

import (
	"errors"
	"fmt"
)

// ErrShape reports that two trees zipped by Map2 disagree on shape at
// some position.
var ErrShape = errors.New("tree shapes differ")

// LeafError wraps a failure of the leaf function during Map or Map2,
// annotated with the index path of the leaf it failed on.
type LeafError struct {
	Path Path
	Err  error
}

func (e *LeafError) Error() string {
	return fmt.Sprintf("leaf func at %s: %v", e.Path, e.Err)
}

func (e *LeafError) Unwrap() error {
	return e.Err
}

// CombineError wraps a failure of the combinator during Deflate,
// annotated with the index path of the container it failed on.
type CombineError struct {
	Path Path
	Err  error
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("combine at %s: %v", e.Path, e.Err)
}

func (e *CombineError) Unwrap() error {
	return e.Err
}

func shapeErr(path Path, format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s", ErrShape, path, fmt.Sprintf(format, args...))
}
