package touch_test

import (
	"math"
	"testing"

	"github.com/Alia5/touchbridge/touch"
	"github.com/stretchr/testify/assert"
)

func TestAccumulatorClamp(t *testing.T) {
	type testCase struct {
		name     string
		bounds   touch.Bounds
		dx, dy   []int32
		expected touch.Position
	}

	cases := []testCase{
		{
			name:     "within bounds",
			bounds:   touch.Bounds{MaxX: 1000, MaxY: 1000},
			dx:       []int32{10, 20},
			dy:       []int32{5},
			expected: touch.Position{X: 30, Y: 5},
		},
		{
			name:     "saturate at upper bound",
			bounds:   touch.Bounds{MaxX: 1000, MaxY: 800},
			dx:       []int32{5000},
			dy:       []int32{801},
			expected: touch.Position{X: 1000, Y: 800},
		},
		{
			name:     "saturate at zero",
			bounds:   touch.Bounds{MaxX: 1000, MaxY: 1000},
			dx:       []int32{-1},
			dy:       []int32{-5000},
			expected: touch.Position{},
		},
		{
			name:     "upper then back down to zero",
			bounds:   touch.Bounds{MaxX: 1000, MaxY: 1000},
			dx:       []int32{5000, -5000},
			expected: touch.Position{X: 0},
		},
		{
			name:     "clamp is not deferred",
			bounds:   touch.Bounds{MaxX: 100, MaxY: 100},
			dx:       []int32{500, -50},
			dy:       []int32{-500, 50},
			expected: touch.Position{X: 50, Y: 50},
		},
		{
			name:     "extreme deltas do not wrap",
			bounds:   touch.Bounds{MaxX: math.MaxUint32, MaxY: 10},
			dx:       []int32{math.MaxInt32, math.MaxInt32, math.MaxInt32},
			dy:       []int32{math.MinInt32},
			expected: touch.Position{X: math.MaxUint32, Y: 0},
		},
		{
			name:     "zero bounds",
			bounds:   touch.Bounds{},
			dx:       []int32{7},
			dy:       []int32{7},
			expected: touch.Position{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := touch.NewAccumulator(tc.bounds)
			for _, d := range tc.dx {
				a.ApplyDeltaX(d)
				assert.LessOrEqual(t, a.Position().X, tc.bounds.MaxX)
			}
			for _, d := range tc.dy {
				a.ApplyDeltaY(d)
				assert.LessOrEqual(t, a.Position().Y, tc.bounds.MaxY)
			}
			assert.Equal(t, tc.expected, a.Position())
			assert.Equal(t, tc.bounds, a.Bounds())
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "x:600 y:300", touch.Position{X: 600, Y: 300}.String())
}
