// Package set defines a persistent (immutable) unordered set backed by a
// hash array mapped trie with a 32-way branching factor.
//
// The trie is addressed by successive 5-bit windows of a mixed 32-bit hash,
// low bits first. An interior node keeps a 32-bit bitmap, one bit per child
// slot, and stores only the occupied slots in a densely packed slice; the
// dense position of a slot is the population count of the bitmap below its
// bit.
//
// Node kinds:
//
//   - singleton - a leaf holding exactly one element and its mixed hash;
//   - collision - a leaf holding two or more distinct elements whose mixed
//     hashes are all equal (a genuine 32-bit collision);
//   - branch    - a bitmap-compressed interior node caching its subtree
//     element count.
//
// The empty set has no node at all.
//
// Every update copies only the nodes on the path from the root to the
// affected slot, at most 7 of them, and shares everything else with the
// previous version. An old root therefore stays fully usable after any
// number of updates derived from it, and any number of goroutines may read
// overlapping versions without synchronization. Updates that change nothing
// return the receiver's root untouched, so callers can detect a no-op by
// comparing roots.
package set
