package set

import (
	"github.com/hideo55/go-popcount"
)

const (
	nbits      = 5            // hash bits consumed per trie level
	slotMask   = 1<<nbits - 1 // the lowest 5 bits (2**5 == 32 slots)
	fullBitmap = ^uint32(0)
)

// node is one of *singleton, *collision or *branch. The empty set has no
// node (nil). Nodes are never mutated after construction: every update path
// copies what it changes and shares the rest, and the recursive remove uses
// a nil node to signal a vanished subtree back to its caller.
type node[E any] interface {
	// size is the total number of elements in the subtree.
	size() int
}

// singleton holds exactly one element together with its mixed hash.
type singleton[E any] struct {
	hash uint32
	elem E
}

func (l *singleton[E]) size() int { return 1 }

// collision holds two or more distinct elements whose mixed hashes are all
// equal. Membership inside the leaf is decided by equality alone.
type collision[E any] struct {
	hash  uint32
	elems []E
}

func (l *collision[E]) size() int { return len(l.elems) }

// branch is a bitmap-compressed interior node: bit i of bitmap marks slot i
// as occupied and children holds the occupied slots densely, in ascending
// slot order. count caches the subtree element total.
type branch[E any] struct {
	bitmap   uint32
	children []node[E]
	count    int
}

func (b *branch[E]) size() int { return b.count }

// slot returns the 5-bit child index starting at bit shift of hash, and the
// bitmap mask for that index.
func slot(hash uint32, shift uint) (idx, mask uint32) {
	idx = (hash >> shift) & slotMask
	return idx, 1 << idx
}

// offset maps a slot to its dense position in children: the number of
// occupied slots below it. A full bitmap short-circuits to the index itself.
func (b *branch[E]) offset(idx, mask uint32) int {
	if b.bitmap == fullBitmap {
		return int(idx)
	}
	return int(popcount.Count(uint64(b.bitmap & (mask - 1))))
}

func lookup[E any](n node[E], eq func(E, E) bool, e E, hash uint32, shift uint) bool {
	for {
		switch t := n.(type) {
		case *singleton[E]:
			return t.hash == hash && eq(t.elem, e)
		case *collision[E]:
			if t.hash != hash {
				return false
			}
			for _, have := range t.elems {
				if eq(have, e) {
					return true
				}
			}
			return false
		case *branch[E]:
			idx, mask := slot(hash, shift)
			if t.bitmap&mask == 0 {
				return false
			}
			n = t.children[t.offset(idx, mask)]
			shift += nbits
		default:
			panic("set: unknown node kind")
		}
	}
}

// insert adds e to the subtree rooted at n and returns the new subtree.
// When e is already present the result is n itself, so callers detect a
// no-op by comparing pointers.
func insert[E any](n node[E], eq func(E, E) bool, e E, hash uint32, shift uint) node[E] {
	switch t := n.(type) {
	case *singleton[E]:
		if t.hash == hash {
			if eq(t.elem, e) {
				return t
			}
			// a genuine 32-bit hash collision
			return &collision[E]{hash: hash, elems: []E{t.elem, e}}
		}
		return mergeLeaves[E](t.hash, t, hash, &singleton[E]{hash: hash, elem: e}, shift)

	case *collision[E]:
		if t.hash != hash {
			return mergeLeaves[E](t.hash, t, hash, &singleton[E]{hash: hash, elem: e}, shift)
		}
		for _, have := range t.elems {
			if eq(have, e) {
				return t
			}
		}
		elems := make([]E, len(t.elems)+1)
		copy(elems, t.elems)
		elems[len(t.elems)] = e
		return &collision[E]{hash: hash, elems: elems}

	case *branch[E]:
		idx, mask := slot(hash, shift)
		i := t.offset(idx, mask)

		if t.bitmap&mask == 0 {
			// the slot is free - splice in a fresh leaf
			children := make([]node[E], len(t.children)+1)
			copy(children, t.children[:i])
			children[i] = &singleton[E]{hash: hash, elem: e}
			copy(children[i+1:], t.children[i:])
			return &branch[E]{bitmap: t.bitmap | mask, children: children, count: t.count + 1}
		}

		child := t.children[i]
		res := insert(child, eq, e, hash, shift+nbits)
		if res == child {
			return t
		}
		children := make([]node[E], len(t.children))
		copy(children, t.children)
		children[i] = res
		return &branch[E]{bitmap: t.bitmap, children: children, count: t.count + res.size() - child.size()}
	}
	panic("set: unknown node kind")
}

// remove deletes e from the subtree rooted at n. It returns n itself when e
// is absent and nil when the subtree vanished entirely; the facade
// normalizes the nil back to the canonical empty set.
func remove[E any](n node[E], eq func(E, E) bool, e E, hash uint32, shift uint) node[E] {
	switch t := n.(type) {
	case *singleton[E]:
		if t.hash == hash && eq(t.elem, e) {
			return nil
		}
		return t

	case *collision[E]:
		if t.hash != hash {
			return t
		}
		for i, have := range t.elems {
			if !eq(have, e) {
				continue
			}
			if len(t.elems) == 2 {
				// demote to a singleton; the hash is already known
				return &singleton[E]{hash: t.hash, elem: t.elems[1-i]}
			}
			elems := make([]E, 0, len(t.elems)-1)
			elems = append(elems, t.elems[:i]...)
			elems = append(elems, t.elems[i+1:]...)
			return &collision[E]{hash: t.hash, elems: elems}
		}
		return t

	case *branch[E]:
		idx, mask := slot(hash, shift)
		if t.bitmap&mask == 0 {
			return t
		}
		i := t.offset(idx, mask)
		child := t.children[i]
		res := remove(child, eq, e, hash, shift+nbits)

		switch {
		case res == child:
			return t

		case res == nil:
			if len(t.children) == 1 {
				return nil
			}
			children := make([]node[E], len(t.children)-1)
			copy(children, t.children[:i])
			copy(children[i:], t.children[i+1:])
			if len(children) == 1 {
				// a lone leaf replaces its branch; a lone sub-branch
				// must stay (its slots belong to a deeper level)
				if _, ok := children[0].(*branch[E]); !ok {
					return children[0]
				}
			}
			return &branch[E]{bitmap: t.bitmap &^ mask, children: children, count: t.count - 1}

		default:
			if len(t.children) == 1 {
				if _, ok := res.(*branch[E]); !ok {
					return res
				}
			}
			children := make([]node[E], len(t.children))
			copy(children, t.children)
			children[i] = res
			return &branch[E]{bitmap: t.bitmap, children: children, count: t.count + res.size() - child.size()}
		}
	}
	panic("set: unknown node kind")
}

// mergeLeaves builds the minimal branch chain joining two leaves whose mixed
// hashes differ. Each recursion consumes another 5-bit window; the hashes
// differ somewhere within 32 bits, so at most 7 levels are built.
func mergeLeaves[E any](h0 uint32, n0 node[E], h1 uint32, n1 node[E], shift uint) *branch[E] {
	idx0, mask0 := slot(h0, shift)
	idx1, mask1 := slot(h1, shift)

	if idx0 == idx1 {
		sub := mergeLeaves[E](h0, n0, h1, n1, shift+nbits)
		return &branch[E]{bitmap: mask0, children: []node[E]{sub}, count: sub.count}
	}

	children := []node[E]{n0, n1}
	if idx1 < idx0 {
		children[0], children[1] = n1, n0
	}
	return &branch[E]{bitmap: mask0 | mask1, children: children, count: n0.size() + n1.size()}
}
