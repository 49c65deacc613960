package list_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/hasbyte1/go-fp-utils/list"
)

func TestListProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	double := list.Map(func(n, i int) int { return n*2 + i })
	always := func(int, int) bool { return true }

	properties.Property("filter(always) after map is map", prop.ForAll(
		func(xs []int) bool {
			mapped := double(xs)
			return slices.Equal(list.Filter(always, mapped), mapped)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("reverse is an involution", prop.ForAll(
		func(xs []int) bool {
			return slices.Equal(list.Reverse(list.Reverse(xs)), xs)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("uniq is idempotent", prop.ForAll(
		func(xs []int) bool {
			once := list.Uniq(xs)
			return slices.Equal(list.Uniq(once), once)
		},
		gen.SliceOf(gen.IntRange(0, 5)),
	))

	properties.Property("take n ++ drop n rebuilds the slice", prop.ForAll(
		func(xs []int, n int) bool {
			n %= len(xs) + 1
			return slices.Equal(list.Concat(list.Take(n, xs), list.Drop(n, xs)), xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(0, 64),
	))

	properties.Property("map preserves length", prop.ForAll(
		func(xs []string) bool {
			return len(list.Map(func(s string, _ int) int { return len(s) })(xs)) == len(xs)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("foldl and foldr agree on addition", prop.ForAll(
		func(xs []int) bool {
			add := func(a, b int) int { return a + b }
			return list.Foldl(add, 0, xs) == list.Foldr(add, 0, xs)
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	properties.TestingRun(t)
}
