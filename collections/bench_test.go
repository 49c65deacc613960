package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-fp-utils/collections"
	"github.com/hasbyte1/go-fp-utils/list"
)

func BenchmarkFilterChain(b *testing.B) {
	c := collections.From(list.Range(0, 10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Filter(func(n, _ int) bool { return n%3 == 0 }).Reverse().Take(100)
	}
}

func BenchmarkMap(b *testing.B) {
	c := collections.From(list.Range(0, 10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = collections.Map(c, func(n, _ int) int { return n * 2 })
	}
}
