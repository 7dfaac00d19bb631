// Package clawmachine parses claw machine descriptions and finds the cheapest
// way to line each claw up over its prize.
package clawmachine

import (
	"fmt"
	"math/big"
)

// Token prices per button press.
const (
	CostA = 3 // button A
	CostB = 1 // button B

	// PrizeOffset is added to both prize coordinates to build the scaled-up puzzle.
	PrizeOffset int64 = 10_000_000_000_000
)

// Vec is a claw position or a per-press claw movement.
type Vec struct{ X, Y int64 }

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Scale(n int64) Vec { return Vec{X: v.X * n, Y: v.Y * n} }
func (v Vec) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }
func (v Vec) isZero() bool { return v.X == 0 && v.Y == 0 }

// Machine is one claw machine: two buttons and a prize.
type Machine struct {
	A     Vec // claw movement per press of button A
	B     Vec // claw movement per press of button B
	Prize Vec // target claw position
}

// Determinant of the 2x2 system [A B]. Zero means the buttons move the claw along the same line.
func (m Machine) Determinant() *big.Int { return bigCross(m.A, m.B) }

// String renders m in the input block format (without the trailing blank line).
func (m Machine) String() string {
	return fmt.Sprintf("Button A: X+%d, Y+%d\nButton B: X+%d, Y+%d\nPrize: X=%d, Y=%d",
		m.A.X, m.A.Y, m.B.X, m.B.Y, m.Prize.X, m.Prize.Y)
}
