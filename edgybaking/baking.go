package main

import (
	"cmp"
	"math"
	"slices"

	"github.com/maisem/codejam"
)

// maxCuts is how many cookies are cut individually before every smaller
// remaining cookie is assumed cut as well.
const maxCuts = 3

type Cookie struct {
	W, H int
}

// Perimeter returns the perimeter of the uncut cookie.
func (c Cookie) Perimeter() int {
	return 2 * (c.W + c.H)
}

// Cut returns the range a single straight cut through c adds to the total
// perimeter.
func (c Cookie) Cut() Cut {
	return Cut{
		Cost:  2 * min(c.W, c.H),
		Value: 2 * math.Hypot(float64(c.W), float64(c.H)),
	}
}

// Cut is the smallest (Cost) and largest (Value) perimeter gain of cutting
// one cookie.
type Cut struct {
	Cost  int
	Value float64
}

func compareCuts(a, b Cut) int {
	if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
		return c
	}
	return cmp.Compare(a.Value, b.Value)
}

type Case struct {
	P       int // perimeter cap
	Cookies []Cookie
}

// check returns the best total not exceeding the cap when any total in
// [lo, hi] is reachable, or -1 if none is.
func (c Case) check(lo int, hi float64) float64 {
	p := float64(c.P)
	switch {
	case hi <= p:
		return hi
	case float64(lo) <= p:
		return p
	}
	return -1
}

type frame struct {
	level int
	n     int // cuts[:n] are still available
	lo    int
	hi    float64
}

// Solve returns the largest total perimeter not exceeding c.P, or -1 if
// even the uncut cookies exceed it.
func (c Case) Solve() float64 {
	cuts := make([]Cut, len(c.Cookies))
	perims := make([]int, len(c.Cookies))
	for i, ck := range c.Cookies {
		cuts[i] = ck.Cut()
		perims[i] = ck.Perimeter()
	}
	slices.SortFunc(cuts, compareCuts)

	values := make([]float64, len(cuts))
	for i, ct := range cuts {
		values[i] = ct.Value
	}
	sum := codejam.PrefixSums(values)
	have := codejam.Sum(perims...)

	best := math.Inf(-1)
	var st codejam.Stack[frame]
	st.Push(frame{n: len(cuts), lo: have, hi: float64(have)})
	st.While(func(f frame) bool {
		if f.level == maxCuts {
			best = max(best, c.check(f.lo, f.hi+sum[f.n]))
			return true
		}
		best = max(best, c.check(f.lo, f.hi))
		for i := 0; i < f.n; i++ {
			st.Push(frame{
				level: f.level + 1,
				n:     i,
				lo:    f.lo + cuts[i].Cost,
				hi:    f.hi + cuts[i].Value,
			})
		}
		return true
	})
	return best
}
