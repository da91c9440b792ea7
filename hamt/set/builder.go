package set

// Builder accumulates elements into one growing set value before handing out
// an immutable result. It is not safe for concurrent use: confine a Builder
// to a single goroutine between NewBuilder and Set. Sets returned by Set are
// immutable and safe to share; later Adds do not affect them.
type Builder[E any] struct {
	set Set[E]
}

// NewBuilder returns a Builder producing sets with the given equality
// predicate and hash function.
func NewBuilder[E any](eq func(E, E) bool, hash func(E) uint32) *Builder[E] {
	return &Builder[E]{set: New(eq, hash)}
}

// Add inserts elems and returns the Builder for chaining.
func (b *Builder[E]) Add(elems ...E) *Builder[E] {
	for _, e := range elems {
		b.set = b.set.Add(e)
	}
	return b
}

// Del removes elems and returns the Builder for chaining.
func (b *Builder[E]) Del(elems ...E) *Builder[E] {
	for _, e := range elems {
		b.set = b.set.Del(e)
	}
	return b
}

// Has reports whether e has been accumulated so far.
func (b *Builder[E]) Has(e E) bool { return b.set.Has(e) }

// Len returns the number of elements accumulated so far.
func (b *Builder[E]) Len() int { return b.set.Len() }

// Set returns the accumulated set.
func (b *Builder[E]) Set() Set[E] { return b.set }
