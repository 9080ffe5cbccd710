package voronoi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPointRounding(t *testing.T) {
	cases := []struct {
		Name string
		In   Vertex
		X, Y float64
	}{
		{Name: "already canonical", In: Vertex{1.5, 2}, X: 1.5, Y: 2},
		{Name: "round up", In: Vertex{1.26, 7.96}, X: 1.3, Y: 8},
		{Name: "binary tie below half", In: Vertex{0.35, 0.15}, X: 0.3, Y: 0.1},
		{Name: "exact tie goes to even", In: Vertex{0.25, 3.75}, X: 0.2, Y: 3.8},
		{Name: "negative zero", In: Vertex{-0.04, -0.0}, X: 0, Y: 0},
		{Name: "negative", In: Vertex{-2.46, -10.04}, X: -2.5, Y: -10},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			p := c.In.Point()
			assert.Equal(t, c.X, p.X())
			assert.Equal(t, c.Y, p.Y())
			assert.False(t, math.Signbit(p.X()) && p.X() == 0)
		})
	}
}

func TestPointEqualityIsOnRoundedValues(t *testing.T) {
	a := NewPoint(1.01, 1.04)
	b := NewPoint(0.96, 1.0)

	assert.Equal(t, a, b)

	m := map[Point]int{a: 1}
	m[b]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])
}

func TestDistanceTo(t *testing.T) {
	assert.Equal(t, 5.0, NewPoint(0, 0).DistanceTo(NewPoint(3, 4)))
	assert.Equal(t, 0.0, NewPoint(1, 1).DistanceTo(NewPoint(1, 1)))
}

func TestFindIntersection(t *testing.T) {
	cases := []struct {
		Name   string
		P0, P1 Point
		L      float64
		Expect Point
	}{
		{
			Name:   "same x gives the midpoint",
			P0:     NewPoint(0, 0),
			P1:     NewPoint(0, 10),
			L:      5,
			Expect: NewPoint(0, 5),
		},
		{
			Name:   "right focus on the directrix",
			P0:     NewPoint(0, 0),
			P1:     NewPoint(5, 10),
			L:      5,
			Expect: NewPoint(-7.5, 10),
		},
		{
			Name:   "left focus on the directrix",
			P0:     NewPoint(5, 10),
			P1:     NewPoint(0, 0),
			L:      5,
			Expect: NewPoint(-7.5, 10),
		},
		{
			Name:   "general quadratic",
			P0:     NewPoint(0, 0),
			P1:     NewPoint(5, 10),
			L:      10,
			Expect: NewPoint(4.1, 4.2),
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, findIntersection(c.P0, c.P1, c.L))
		})
	}
}

func TestCheckCircle(t *testing.T) {
	// right turn: (10,0) -> (0,0) -> (5,10)
	x, center, radius, ok := checkCircle(NewPoint(10, 0), NewPoint(0, 0), NewPoint(5, 10))
	assert.True(t, ok)
	assert.Equal(t, NewPoint(5, 3.75), center)
	assert.InDelta(t, 6.25, radius, 1e-12)
	assert.InDelta(t, 11.25, x, 1e-12)

	// the same triple in the other direction is a left turn
	_, _, _, ok = checkCircle(NewPoint(0, 0), NewPoint(10, 0), NewPoint(5, 10))
	assert.False(t, ok)

	// collinear
	_, _, _, ok = checkCircle(NewPoint(0, 0), NewPoint(5, 5), NewPoint(10, 10))
	assert.False(t, ok)
}

func TestClipEdge(t *testing.T) {
	bbox := NewBoundingBox(10, 10)

	cases := []struct {
		Name   string
		In     Segment
		Expect Segment
		Inside bool
	}{
		{
			Name:   "inside untouched",
			In:     Segment{1, 1, 9, 9},
			Expect: Segment{1, 1, 9, 9},
			Inside: true,
		},
		{
			Name:   "crosses both sides",
			In:     Segment{-5, 5, 15, 5},
			Expect: Segment{0, 5, 10, 5},
			Inside: true,
		},
		{
			Name:   "end outside",
			In:     Segment{5, 5, 5, 20},
			Expect: Segment{5, 5, 5, 10},
			Inside: true,
		},
		{
			Name:   "fully outside",
			In:     Segment{-5, -5, -1, -1},
			Inside: false,
		},
		{
			Name:   "vertical outside",
			In:     Segment{11, 0, 11, 10},
			Inside: false,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			seg := c.In
			inside := clipEdge(&seg, bbox)
			assert.Equal(t, c.Inside, inside)
			if c.Inside {
				assert.Equal(t, c.Expect, seg)
			}
		})
	}
}
