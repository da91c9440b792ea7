package set

import "hash/maphash"

// mix spreads a raw hash code over all 32 bits. Raw hashes often differ only
// in their low bits (small integers, sequential ids) while the trie consumes
// low bits first, so every facade operation mixes the raw hash exactly once
// before any slot index is computed.
func mix(h uint32) uint32 {
	h += ^(h << 9)
	h ^= h >> 14
	h += h << 4
	h ^= h >> 10
	return h
}

var seed = maphash.MakeSeed()

// StringHash is a ready-made hash function for Set[string]. The seed is
// per-process, so hashes are not stable across runs.
func StringHash(s string) uint32 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(s)
	return uint32(h.Sum64())
}

// IntHash is a ready-made hash function for Set[int]. Truncation is enough:
// mix takes care of the poor distribution of small values.
func IntHash(i int) uint32 {
	return uint32(i)
}
