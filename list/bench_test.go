package list_test

import (
	"testing"

	"github.com/hasbyte1/go-fp-utils/list"
)

func makeInts(n int) []int {
	return list.Range(0, n)
}

func BenchmarkMap(b *testing.B) {
	xs := makeInts(10_000)
	double := list.Map(func(n, _ int) int { return n * 2 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		double(xs)
	}
}

func BenchmarkFilter(b *testing.B) {
	xs := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Filter(func(n, _ int) bool { return n%2 == 0 }, xs)
	}
}

func BenchmarkFoldl(b *testing.B) {
	xs := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Foldl(func(acc, n int) int { return acc + n }, 0, xs)
	}
}

func BenchmarkUniq(b *testing.B) {
	xs := list.Map(func(n, _ int) int { return n % 100 })(makeInts(10_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Uniq(xs)
	}
}

func BenchmarkUniqDeep(b *testing.B) {
	xs := list.Map(func(n, _ int) []int { return []int{n % 100} })(makeInts(1_000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.UniqDeep(xs)
	}
}
