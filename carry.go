package motionaccel

import "math"

// CarryState is the signed sub-pixel remainder owed to each axis by earlier
// touchpad events. Both components stay within (-1, 1).
type CarryState struct {
	X float64
	Y float64
}

// apply folds the carry into the scaled deltas, truncates the sums toward
// zero and keeps the truncated fractions as the new carry.
func (c *CarryState) apply(dx, dy float64) Offset {
	return Offset{
		DX: carryAxis(dx, &c.X),
		DY: carryAxis(dy, &c.Y),
	}
}

func carryAxis(delta float64, carry *float64) float64 {
	raw := delta + *carry
	out := math.Trunc(raw)
	*carry = raw - out
	if math.Abs(*carry) >= 1 {
		*carry -= math.Trunc(*carry)
	}
	return out
}
