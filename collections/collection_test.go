package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fp-utils/collections"
)

func isEven(n, _ int) bool { return n%2 == 0 }

func TestConstructorsCopy(t *testing.T) {
	src := []int{1, 2, 3}
	c := collections.From(src)
	src[0] = 99
	assert.Equal(t, []int{1, 2, 3}, c.All())

	out := c.All()
	out[1] = 42
	assert.Equal(t, []int{1, 2, 3}, c.All())

	assert.True(t, collections.Empty[string]().IsEmpty())
	assert.Equal(t, []string{}, collections.Empty[string]().All())
	assert.Equal(t, 3, collections.New(1, 2, 3).Count())
}

func TestGetAndAt(t *testing.T) {
	c := collections.New("a", "b")

	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = c.Get(2)
	assert.False(t, ok)

	_, err := c.At(-1)
	require.ErrorIs(t, err, collections.ErrIndexOutOfRange)
}

func TestFirstLast(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, 1, c.First().UnwrapOr(0))
	assert.Equal(t, 3, c.Last().UnwrapOr(0))
	assert.True(t, collections.Empty[int]().First().IsNone())
}

func TestFilterReject(t *testing.T) {
	c := collections.New(1, 2, 3, 4, 5, 6)
	assert.Equal(t, []int{2, 4, 6}, c.Filter(isEven).All())
	assert.Equal(t, []int{1, 3, 5}, c.Reject(isEven).All())
	assert.Equal(t, 6, c.Count(), "original must be unchanged")
}

func TestSlicing(t *testing.T) {
	c := collections.New(1, 2, 3, 4, 5)
	lt3 := func(n int) bool { return n < 3 }

	assert.Equal(t, []int{1, 2}, c.Take(2).All())
	assert.Equal(t, []int{3, 4, 5}, c.Drop(2).All())
	assert.Equal(t, []int{1, 2, 3}, c.DropLast(2).All())
	assert.Equal(t, []int{3, 4, 5}, c.DropWhile(lt3).All())
	assert.Equal(t, []int{1, 2}, c.TakeWhile(lt3).All())
	assert.Equal(t, []int{5, 4, 3, 2, 1}, c.Reverse().All())
	assert.Empty(t, c.Take(-1).All())
	assert.Equal(t, c.All(), c.Take(100).All())
}

func TestSearch(t *testing.T) {
	c := collections.New(5, 8, 12)
	gt6 := func(n int) bool { return n > 6 }
	gt20 := func(n int) bool { return n > 20 }

	assert.Equal(t, 8, c.Find(gt6).UnwrapOr(-1))
	assert.True(t, c.Find(gt20).IsNone())
	assert.Equal(t, 1, c.FindIndex(gt6))
	assert.Equal(t, -1, c.FindIndex(gt20))
	assert.True(t, c.Some(gt6))
	assert.False(t, c.Every(gt6))
	assert.True(t, collections.Empty[int]().Every(gt20))

	v, err := c.FindOrFail(gt6)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	_, err = c.FindOrFail(gt20)
	assert.ErrorIs(t, err, collections.ErrNoMatchingItems)
}

func TestAppendConcat(t *testing.T) {
	a := collections.New(1, 2)
	b := collections.New(3)

	assert.Equal(t, []int{1, 2, 3}, a.Concat(b).All())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Append(3, 4).All())
	assert.Equal(t, []int{1, 2}, a.All())

	assert.Equal(t, []int{1, 2}, a.Concat(nil).All())
}

func TestPartitionChunk(t *testing.T) {
	c := collections.New(1, 2, 3, 4, 5)
	even, odd := c.Partition(func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even.All())
	assert.Equal(t, []int{1, 3, 5}, odd.All())

	chunks, err := c.Chunk(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)

	_, err = c.Chunk(0)
	assert.ErrorIs(t, err, collections.ErrInvalidChunkSize)
}

func TestJoinStringJSON(t *testing.T) {
	c := collections.New(1, 2, 3)
	assert.Equal(t, "1-2-3", c.Join("-"))
	assert.Equal(t, "[1,2,3]", c.String())

	b, err := c.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, "[1,2,3]", string(b))
}

func TestTapAndEach(t *testing.T) {
	c := collections.New("x", "y")

	var seen int
	out := c.Tap(func(in *collections.Collection[string]) { seen = in.Count() })
	assert.Same(t, c, out)
	assert.Equal(t, 2, seen)

	var idx []int
	c.Each(func(_ string, i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 1}, idx)
}

func TestWhen(t *testing.T) {
	c := collections.New(3, 1, 2)
	rev := func(in *collections.Collection[int]) *collections.Collection[int] { return in.Reverse() }

	assert.Equal(t, []int{2, 1, 3}, c.When(true, rev).All())
	assert.Equal(t, []int{3, 1, 2}, c.When(false, rev).All())
	assert.True(t, collections.Empty[int]().WhenNotEmpty(rev).IsEmpty())
}

func TestEnumerable(t *testing.T) {
	var e collections.Enumerable[int] = collections.New(1, 2)
	assert.Equal(t, 2, e.Count())
	assert.False(t, e.IsEmpty())
}
