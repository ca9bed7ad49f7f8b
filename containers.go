package codejam

import "tailscale.com/util/deephash"

type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

// While pops values until the stack is empty or f returns false. f may push
// onto the stack.
func (s *Stack[T]) While(f func(T) bool) {
	for {
		v, ok := s.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// Memo caches the results of f keyed by the deep hash of its input, so
// identical cases in one input are only solved once.
// The zero value is ready to use.
type Memo[K, V any] struct {
	hash func(*K) deephash.Sum
	m    map[deephash.Sum]V
}

// Get returns f(k), calling f only if an equal k has not been seen before.
func (m *Memo[K, V]) Get(k K, f func(K) V) V {
	if flagNoMemo {
		return f(k)
	}
	if m.hash == nil {
		m.hash = deephash.HasherForType[K]()
		m.m = make(map[deephash.Sum]V)
	}
	sum := m.hash(&k)
	if v, ok := m.m[sum]; ok {
		return v
	}
	v := f(k)
	m.m[sum] = v
	return v
}

// Len returns the number of distinct inputs seen.
func (m *Memo[K, V]) Len() int {
	return len(m.m)
}
