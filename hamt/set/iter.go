package set

import "iter"

// maxLevels bounds the trie depth: 32 hash bits at 5 bits per level.
const maxLevels = 7

// iterFrame is one step of the depth-first walk: a node and the position of
// the next child (branch) or element (collision) to visit.
type iterFrame[E any] struct {
	n   node[E]
	pos int
}

// Iter calls handler for every element in depth-first bitmap order and
// reports whether the walk ran to completion. The handler can abort the walk
// by returning false.
func (s Set[E]) Iter(handler func(E) bool) bool {
	if s.root == nil {
		return true
	}

	stack := make([]iterFrame[E], 1, maxLevels+1)
	stack[0] = iterFrame[E]{n: s.root}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		switch n := top.n.(type) {
		case *singleton[E]:
			stack = stack[:len(stack)-1]
			if !handler(n.elem) {
				return false
			}
		case *collision[E]:
			if top.pos == len(n.elems) {
				stack = stack[:len(stack)-1]
				continue
			}
			e := n.elems[top.pos]
			top.pos++
			if !handler(e) {
				return false
			}
		case *branch[E]:
			if top.pos == len(n.children) {
				stack = stack[:len(stack)-1]
				continue
			}
			child := n.children[top.pos]
			top.pos++
			stack = append(stack, iterFrame[E]{n: child})
		}
	}
	return true
}

// All returns a restartable sequence over the elements. Order is
// unspecified but stable for a given set value.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.Iter(yield)
	}
}

// Elems returns all elements as a slice, in traversal order.
func (s Set[E]) Elems() []E {
	elems := make([]E, 0, s.Len())
	s.Iter(func(e E) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}
