package walk

import (
	"github.com/signadot/ragged/classify"
)

// The explicit-stack engines mirror the recursive ones frame for
// frame: one frame per open container, next indexing the child the
// frame is currently working on. They exist so that tree depth costs
// heap, not goroutine stack.

type frame struct {
	kids []any
	out  []any
	next int
}

func stackPath(stack []*frame) Path {
	p := make(Path, len(stack))
	for i, fr := range stack {
		p[i] = fr.next
	}
	return p
}

func pushFrame(p classify.Policy, stack []*frame, v any) []*frame {
	kids := p.Children(v)
	return append(stack, &frame{
		kids: kids,
		out:  make([]any, len(kids)),
	})
}

func mapStack(p classify.Policy, root any, f LeafFunc) (any, error) {
	if kindOf(p, root) == classify.Leaf {
		res, err := f(root)
		if err != nil {
			return nil, &LeafError{Path: Path{}, Err: err}
		}
		return res, nil
	}
	stack := pushFrame(p, nil, root)
	for {
		top := stack[len(stack)-1]
		if top.next == len(top.kids) {
			v := p.Sequence(top.out)
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return v, nil
			}
			parent := stack[len(stack)-1]
			parent.out[parent.next] = v
			parent.next++
			continue
		}
		kid := top.kids[top.next]
		if kindOf(p, kid) == classify.Container {
			stack = pushFrame(p, stack, kid)
			continue
		}
		res, err := f(kid)
		if err != nil {
			return nil, &LeafError{Path: stackPath(stack), Err: err}
		}
		top.out[top.next] = res
		top.next++
	}
}

// deflateStack assumes a container root; Deflate handles the bare leaf
// base case before selecting an engine.
func deflateStack(p classify.Policy, root any, combine Combine) (any, error) {
	stack := pushFrame(p, nil, root)
	for {
		top := stack[len(stack)-1]
		if top.next == len(top.kids) {
			res, err := combine(top.out)
			if err != nil {
				return nil, &CombineError{
					Path: stackPath(stack[:len(stack)-1]),
					Err:  err,
				}
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return res, nil
			}
			parent := stack[len(stack)-1]
			parent.out[parent.next] = res
			parent.next++
			continue
		}
		kid := top.kids[top.next]
		if kindOf(p, kid) == classify.Container {
			stack = pushFrame(p, stack, kid)
			continue
		}
		top.out[top.next] = kid
		top.next++
	}
}
