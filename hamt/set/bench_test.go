package set

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func benchKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}

func BenchmarkAdd(b *testing.B) {
	keys := benchKeys(10_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := NewComparable[string](StringHash)
		for _, key := range keys {
			s = s.Add(key)
		}
	}
}

func BenchmarkAddMap(b *testing.B) {
	keys := benchKeys(10_000)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		m := make(map[string]struct{})
		for _, key := range keys {
			m[key] = struct{}{}
		}
	}
}

func BenchmarkHas(b *testing.B) {
	keys := benchKeys(10_000)

	s := NewComparable[string](StringHash)
	for _, key := range keys {
		s = s.Add(key)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, key := range keys {
			_ = s.Has(key)
		}
	}
}

func BenchmarkHasMap(b *testing.B) {
	keys := benchKeys(10_000)

	m := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		m[key] = struct{}{}
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, key := range keys {
			_, _ = m[key]
		}
	}
}

func BenchmarkDel(b *testing.B) {
	keys := benchKeys(10_000)

	s := NewComparable[string](StringHash)
	for _, key := range keys {
		s = s.Add(key)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		cur := s
		for _, key := range keys {
			cur = cur.Del(key)
		}
	}
}
