package clawmachine

import (
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Presses is a button press combination.
type Presses struct {
	A, B int64
}

// Cost is the token price of p. It can't overflow for presses returned by Solve.
func (p Presses) Cost() int64 { return p.A*CostA + p.B*CostB }

// Lands reports where the claw ends up after p on machine m.
func (p Presses) Lands(m Machine) Vec { return m.A.Scale(p.A).Add(m.B.Scale(p.B)) }

// costFits reports whether p.Cost() fits an int64; p must be non-negative.
func (p Presses) costFits() bool { return p.A <= (math.MaxInt64-p.B)/CostA }

// divExact returns n/d when d divides n exactly.
func divExact[T constraints.Integer](n, d T) (T, bool) {
	if d == 0 || n%d != 0 {
		return 0, false
	}
	return n / d, true
}

// mulExact returns a*b, or false when the product wraps.
func mulExact[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (b == -1 && c == a) {
		return 0, false
	}
	return c, true
}

// bigCross is a.X*b.Y - b.X*a.Y, computed without wrapping.
func bigCross(a, b Vec) *big.Int {
	l := new(big.Int).Mul(big.NewInt(a.X), big.NewInt(b.Y))
	r := new(big.Int).Mul(big.NewInt(b.X), big.NewInt(a.Y))
	return l.Sub(l, r)
}

// quoExact returns n/d when d divides n exactly and the quotient fits an int64.
func quoExact(n, d *big.Int) (int64, bool) {
	q, r := new(big.Int).QuoRem(n, d, new(big.Int))
	if r.Sign() != 0 || !q.IsInt64() {
		return 0, false
	}
	return q.Int64(), true
}

// Solve finds the cheapest non-negative press combination reaching m.Prize.
// ok is false when no such combination exists; a prize at the origin is
// solvable with zero presses and is reported as ok. Answers whose cost
// doesn't fit an int64 are reported as unsolvable.
func Solve(m Machine) (p Presses, ok bool) {
	det := m.Determinant()
	if det.Sign() == 0 {
		return solveCollinear(m)
	}

	// Cramer's rule.
	a, okA := quoExact(bigCross(m.Prize, m.B), det)
	b, okB := quoExact(bigCross(m.A, m.Prize), det)
	if !okA || !okB || a < 0 || b < 0 { // whole, non-negative presses only
		return Presses{}, false
	}
	p = Presses{A: a, B: b}
	if !p.costFits() {
		return Presses{}, false
	}
	return p, true
}

// Cost returns the token cost of the cheapest way to win m's prize.
func (m Machine) Cost() (int64, bool) {
	p, ok := Solve(m)
	if !ok {
		return 0, false
	}
	return p.Cost(), true
}

// solveCollinear handles buttons that move the claw along one line. Only
// single-button answers are considered, and each is checked in both axes.
func solveCollinear(m Machine) (Presses, bool) {
	var (
		best  Presses
		found bool
	)
	if n, ok := pressesAlong(m.A, m.Prize); ok && (Presses{A: n}).costFits() {
		best, found = Presses{A: n}, true
	}
	if n, ok := pressesAlong(m.B, m.Prize); ok {
		cand := Presses{B: n}
		if !found || cand.Cost() < best.Cost() {
			best, found = cand, true
		}
	}
	return best, found
}

// pressesAlong returns n >= 0 with n*step == target.
func pressesAlong(step, target Vec) (int64, bool) {
	if step.isZero() {
		return 0, target.isZero()
	}
	var (
		n  int64
		ok bool
	)
	if step.X != 0 {
		n, ok = divExact(target.X, step.X)
	} else {
		n, ok = divExact(target.Y, step.Y)
	}
	if !ok || n < 0 {
		return 0, false
	}
	x, okX := mulExact(step.X, n)
	y, okY := mulExact(step.Y, n)
	if !okX || !okY || x != target.X || y != target.Y {
		return 0, false
	}
	return n, true
}

// Total is the outcome of evaluating a list of machines.
type Total struct {
	Cost     int64 // tokens spent on every winnable prize
	Solved   int   // machines with a press combination
	Unsolved int   // machines that can't be won
}

// TotalCost sums the cheapest cost of every winnable machine in ms.
func TotalCost(ms []Machine) Total {
	var t Total
	for _, m := range ms {
		t.Add(m)
	}
	return t
}

// Add evaluates m and folds the result into t.
func (t *Total) Add(m Machine) (cost int64, ok bool) {
	cost, ok = m.Cost()
	if !ok {
		t.Unsolved++
		return 0, false
	}
	t.Solved++
	t.Cost += cost
	return cost, true
}
