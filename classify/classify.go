package classify

import (
	"fmt"
	"reflect"
)

// Kind is the classification of a value during traversal: values are
// either containers, which traversal descends into, or leaves, which
// are handed to user code as-is.
type Kind int

const (
	Leaf Kind = iota
	Container
)

func (k Kind) String() string {
	switch k {
	case Leaf:
		return "Leaf"
	case Container:
		return "Container"
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Leaf":
		*k = Leaf
	case "Container":
		*k = Container
	default:
		return fmt.Errorf("unrecognized kind %q", d)
	}
	return nil
}

// Tagged marks a value as a domain object. A tagged value is always a
// leaf under the default policy, even when its representation is an
// ordered sequence. Tabular records, model objects and specialized
// node types implement Tagged to opt out of being descended into.
type Tagged interface {
	Tag() string
}

// Policy decides the shape of trees: Classify decides Leaf vs
// Container for a single value, Children decomposes a container into
// its ordered child values, and Sequence recomposes an ordered child
// list into a container value.
//
// Classify must be total and pure: the same value always classifies
// the same way, independent of traversal position. It must inspect
// only type and tag metadata, never the value's contents, so that
// classification cost does not grow with container size. For any v
// with Classify(v) == Container, Sequence(Children(v)) must denote a
// container with the same arity and child order as v.
type Policy interface {
	Classify(v any) Kind
	Children(v any) []any
	Sequence(children []any) any
}

type defaultPolicy struct{}

// Default returns the built-in policy: a value implementing Tagged is
// always a leaf; otherwise slices (except []byte) are containers and
// everything else, including nil, strings, maps and structs, is a
// leaf. Containers rebuilt by this policy are always []any.
func Default() Policy {
	return defaultPolicy{}
}

func (defaultPolicy) Classify(v any) Kind {
	switch v.(type) {
	case nil, Tagged:
		return Leaf
	case []any:
		return Container
	case []byte:
		return Leaf
	}
	if reflect.TypeOf(v).Kind() == reflect.Slice {
		return Container
	}
	return Leaf
}

func (defaultPolicy) Children(v any) []any {
	if vs, ok := v.([]any); ok {
		return vs
	}
	rv := reflect.ValueOf(v)
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res
}

func (defaultPolicy) Sequence(children []any) any {
	if children == nil {
		return []any{}
	}
	return children
}
