package pred_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-fp-utils/pred"
)

func isEven(n int) bool { return n%2 == 0 }

func TestNot(t *testing.T) {
	assert.True(t, pred.Not(0))
	assert.False(t, pred.Not(1))
	assert.True(t, pred.Not(false))
	assert.False(t, pred.Not(true))
	assert.False(t, pred.Not(-3))
	assert.True(t, pred.Not(uint8(0)))
}

type flag bool

func TestNotNamedType(t *testing.T) {
	assert.True(t, pred.Not(flag(false)))
}

func TestIsEmpty(t *testing.T) {
	assert.False(t, pred.IsEmpty([]int{1, 2}))
	assert.True(t, pred.IsEmpty([]int{}))
	assert.True(t, pred.IsEmpty[string](nil))
}

func TestIncludes(t *testing.T) {
	assert.True(t, pred.Includes(3, []int{1, 2, 3, 4}))
	assert.False(t, pred.Includes(5, []int{1, 2, 3, 4}))
	assert.False(t, pred.Includes("a", nil))
}

func TestNegate(t *testing.T) {
	odd := pred.Negate(pred.Pred[int](isEven))
	assert.True(t, odd(3))
	assert.False(t, odd(4))
}

func TestAndOr(t *testing.T) {
	small := pred.Pred[int](func(n int) bool { return n < 10 })
	both := pred.And(isEven, small)
	either := pred.Or(isEven, small)

	assert.True(t, both(4))
	assert.False(t, both(12))
	assert.True(t, either(12))
	assert.True(t, either(3))
	assert.False(t, either(13))

	assert.True(t, pred.And[int]()(1))
	assert.False(t, pred.Or[int]()(1))
}

func TestAndShortCircuits(t *testing.T) {
	calls := 0
	counted := pred.Pred[int](func(int) bool { calls++; return true })
	pred.And(pred.Pred[int](isEven), counted)(3)
	assert.Zero(t, calls)
}

func TestEqNeq(t *testing.T) {
	assert.True(t, pred.Eq("a")("a"))
	assert.False(t, pred.Eq("a")("b"))
	assert.True(t, pred.Neq(1)(2))
	assert.False(t, pred.Neq(1)(1))
}
