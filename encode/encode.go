// Package encode renders trees as compact bracketed text, primarily
// for debugging and CLI display. Containers appear as "[a, b, [c]]",
// tagged leaves carry their tag as a "!tag" prefix.
package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/ragged/classify"
)

type encOpts struct {
	policy classify.Policy
	colors *Colors
}

type EncodeOption func(*encOpts)

// EncodePolicy substitutes the classification policy used while
// rendering. The default is classify.Default().
func EncodePolicy(p classify.Policy) EncodeOption {
	return func(o *encOpts) {
		o.policy = p
	}
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		o.colors = c
	}
}

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	o := &encOpts{policy: classify.Default()}
	for _, opt := range opts {
		opt(o)
	}
	e := &encoder{w: w, opts: o}
	if err := e.encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// MustString renders v to a string, for tests and debug logging.
func MustString(v any, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return fmt.Sprintf("[raw] %v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

type encoder struct {
	w    io.Writer
	opts *encOpts
}

func (e *encoder) encode(v any) error {
	if e.opts.policy.Classify(v) == classify.Container {
		return e.encodeContainer(v)
	}
	return e.encodeLeaf(v)
}

func (e *encoder) encodeContainer(v any) error {
	if err := e.sep("["); err != nil {
		return err
	}
	for i, kid := range e.opts.policy.Children(v) {
		if i != 0 {
			if err := e.sep(", "); err != nil {
				return err
			}
		}
		if err := e.encode(kid); err != nil {
			return err
		}
	}
	return e.sep("]")
}

func (e *encoder) encodeLeaf(v any) error {
	if tagged, ok := v.(classify.Tagged); ok {
		tag := "!" + tagged.Tag() + " "
		if e.opts.colors != nil {
			tag = e.opts.colors.Tag("%s", tag)
		}
		if _, err := io.WriteString(e.w, tag); err != nil {
			return err
		}
	}
	s := leafString(v)
	if e.opts.colors != nil {
		s = e.opts.colors.Leaf("%s", s)
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func (e *encoder) sep(s string) error {
	if e.opts.colors != nil {
		s = e.opts.colors.Sep("%s", s)
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func leafString(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	case []byte:
		return strconv.Quote(string(x))
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
