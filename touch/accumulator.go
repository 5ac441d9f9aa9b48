package touch

import "fmt"

// Position is an absolute touchscreen coordinate.
type Position struct {
	X, Y uint32
}

func (p Position) String() string {
	return fmt.Sprintf("x:%d y:%d", p.X, p.Y)
}

// Bounds is the inclusive upper limit of each axis. The lower limit is always 0.
type Bounds struct {
	MaxX, MaxY uint32
}

// Accumulator integrates relative motion into a Position clamped to Bounds.
type Accumulator struct {
	bounds Bounds
	pos    Position
}

// NewAccumulator returns an Accumulator at (0,0).
func NewAccumulator(b Bounds) *Accumulator {
	return &Accumulator{bounds: b}
}

// ApplyDeltaX moves X by delta, saturating at 0 and MaxX.
func (a *Accumulator) ApplyDeltaX(delta int32) {
	a.pos.X = clamp(a.pos.X, delta, a.bounds.MaxX)
}

// ApplyDeltaY moves Y by delta, saturating at 0 and MaxY.
func (a *Accumulator) ApplyDeltaY(delta int32) {
	a.pos.Y = clamp(a.pos.Y, delta, a.bounds.MaxY)
}

// Position returns the current clamped position.
func (a *Accumulator) Position() Position {
	return a.pos
}

// Bounds returns the configured bounds.
func (a *Accumulator) Bounds() Bounds {
	return a.bounds
}

func clamp(cur uint32, delta int32, max uint32) uint32 {
	v := int64(cur) + int64(delta)
	switch {
	case v < 0:
		return 0
	case v > int64(max):
		return max
	default:
		return uint32(v)
	}
}
