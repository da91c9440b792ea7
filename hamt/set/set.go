package set

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySet is returned by One when the set has no elements.
var ErrEmptySet = errors.New("set: empty set")

// Set is a persistent unordered set of elements of type E. Mutating
// operations return a new Set and leave the receiver untouched; the two
// share every subtree not on the updated path.
//
// A Set must be created by New, NewComparable or From. Its zero value has
// no hash function and is unusable.
type Set[E any] struct {
	root node[E]
	eq   func(E, E) bool
	hash func(E) uint32
}

// New returns an empty set using the given equality predicate and hash
// function. The two must agree: eq(a, b) implies hash(a) == hash(b).
func New[E any](eq func(E, E) bool, hash func(E) uint32) Set[E] {
	return Set[E]{eq: eq, hash: hash}
}

// NewComparable returns an empty set deriving equality from ==.
func NewComparable[E comparable](hash func(E) uint32) Set[E] {
	return New(func(a, b E) bool { return a == b }, hash)
}

// From builds a set from elems by repeated Add. Duplicates collapse.
func From[E any](eq func(E, E) bool, hash func(E) uint32, elems ...E) Set[E] {
	s := New(eq, hash)
	if len(elems) == 0 {
		return s
	}
	// a single element needs no branch at all
	s.root = &singleton[E]{hash: mix(hash(elems[0])), elem: elems[0]}
	for _, e := range elems[1:] {
		s = s.Add(e)
	}
	return s
}

// IsEmpty reports whether the set has no elements.
func (s Set[E]) IsEmpty() bool {
	return s.root == nil
}

// Len returns the number of elements. It is O(1), read from cached counts.
func (s Set[E]) Len() int {
	if s.root == nil {
		return 0
	}
	return s.root.size()
}

// Has reports whether e is in the set.
func (s Set[E]) Has(e E) bool {
	if s.root == nil {
		return false
	}
	return lookup(s.root, s.eq, e, mix(s.hash(e)), 0)
}

// Add returns a set that also contains e. If e is already present the
// result shares the receiver's root unchanged.
func (s Set[E]) Add(e E) Set[E] {
	h := mix(s.hash(e))
	if s.root == nil {
		s.root = &singleton[E]{hash: h, elem: e}
		return s
	}
	s.root = insert(s.root, s.eq, e, h, 0)
	return s
}

// Del returns a set without e. If e is absent the result shares the
// receiver's root unchanged.
func (s Set[E]) Del(e E) Set[E] {
	if s.root == nil {
		return s
	}
	// a vanished root comes back as nil, which is the canonical empty set
	s.root = remove(s.root, s.eq, e, mix(s.hash(e)), 0)
	return s
}

// One returns some element of the set, or ErrEmptySet when it has none.
func (s Set[E]) One() (E, error) {
	n := s.root
	for n != nil {
		switch t := n.(type) {
		case *singleton[E]:
			return t.elem, nil
		case *collision[E]:
			return t.elems[0], nil
		case *branch[E]:
			n = t.children[0]
		default:
			panic("set: unknown node kind")
		}
	}
	var zero E
	return zero, ErrEmptySet
}

// Union returns a set containing the elements of both s and other. When
// other is empty, or contributes nothing, the result shares s's root.
func (s Set[E]) Union(other Set[E]) Set[E] {
	if other.root == nil {
		return s
	}
	for e := range other.All() {
		s = s.Add(e)
	}
	return s
}

// Diff returns a set with every element of other removed from s.
func (s Set[E]) Diff(other Set[E]) Set[E] {
	if s.root == nil || other.root == nil {
		return s
	}
	for e := range other.All() {
		s = s.Del(e)
	}
	return s
}

// Intersect returns a set with the elements present in both s and other.
func (s Set[E]) Intersect(other Set[E]) Set[E] {
	if s.root == nil {
		return s
	}
	if other.root == nil {
		s.root = nil
		return s
	}
	res := s
	for e := range s.All() {
		if !other.Has(e) {
			res = res.Del(e)
		}
	}
	return res
}

// String renders the elements in traversal order, for diagnostics only.
func (s Set[E]) String() string {
	var sb strings.Builder
	sb.WriteString("Set{")
	first := true
	s.Iter(func(e E) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v", e)
		return true
	})
	sb.WriteByte('}')
	return sb.String()
}
