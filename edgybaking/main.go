// Command edgybaking solves Code Jam 2018 Round 1A "Edgy Baking".
package main

import (
	_ "embed"

	"github.com/maisem/codejam"
)

func main() {
	codejam.Run(source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*codejam.Puzzle

	memo codejam.Memo[Case, float64]
}

/*
4
1 7
1 1
2 920
50 120
50 120
1 32
7 4
3 240
10 12
34 11
13 11

want=Case #1: 6.82842712
want=Case #2: 920.00000000
want=Case #3: 32.00000000
want=Case #4: 240.00000000
*/
func (s *solver) Solve() any {
	n, p := s.Int2()
	c := Case{P: p, Cookies: make([]Cookie, n)}
	for i := range c.Cookies {
		c.Cookies[i].W, c.Cookies[i].H = s.Int2()
	}
	best := s.memo.Get(c, Case.Solve)
	s.Debugf("case #%d: n=%d p=%d best=%v", s.Case, n, p, best)
	return codejam.FormatFixed(best, 8)
}
