package walk

import (
	"slices"
	"strconv"
	"strings"
)

// Path locates a node in a tree as the sequence of child indices from
// the root. The empty path locates the root itself.
type Path []int

// String returns the JSONPath-style representation of the path, for
// example "$[1][0]". The root path is "$".
func (p Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for _, i := range p {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}
	return b.String()
}

// clone detaches the path from any shared backing array. Traversal
// reuses one backing array down a branch, so paths placed in errors or
// otherwise retained must be cloned first.
func (p Path) clone() Path {
	return slices.Clone(p)
}
