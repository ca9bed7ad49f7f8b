package codejam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s Stack[int]
	_, ok := s.Pop()
	require.False(t, ok)

	s.Push(1)
	s.Push(2)
	require.Equal(t, 2, s.Len())

	// While sees values pushed from inside f.
	var got []int
	s.While(func(v int) bool {
		got = append(got, v)
		if v == 2 {
			s.Push(3)
		}
		return true
	})
	assert.Equal(t, []int{2, 3, 1}, got)
	assert.Zero(t, s.Len())

	s.Push(4)
	s.Push(5)
	s.While(func(int) bool { return false })
	assert.Equal(t, 1, s.Len())
}

type memoKey struct {
	N  int
	Xs []int
}

func TestMemo(t *testing.T) {
	var m Memo[memoKey, int]
	calls := 0
	sum := func(k memoKey) int {
		calls++
		return k.N + Sum(k.Xs...)
	}

	assert.Equal(t, 7, m.Get(memoKey{N: 1, Xs: []int{2, 4}}, sum))
	assert.Equal(t, 7, m.Get(memoKey{N: 1, Xs: []int{2, 4}}, sum))
	assert.Equal(t, 1, calls)

	assert.Equal(t, 8, m.Get(memoKey{N: 1, Xs: []int{2, 5}}, sum))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, m.Len())

	flagNoMemo = true
	defer func() { flagNoMemo = false }()
	assert.Equal(t, 7, m.Get(memoKey{N: 1, Xs: []int{2, 4}}, sum))
	assert.Equal(t, 3, calls)
}
