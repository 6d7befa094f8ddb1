// seehuhn.de/go/outline - raster outline tracing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package line

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectionCrossing(t *testing.T) {
	l1 := Seg(0, 0, 2, 2)
	l2 := Seg(0, 2, 2, 0)

	p, ok := l1.Intersect(l2)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X(), Precision)
	assert.InDelta(t, 1, p.Y(), Precision)
}

func TestIntersectionParallel(t *testing.T) {
	cases := []struct {
		name   string
		l1, l2 Line
	}{
		{"horizontal", Seg(0, 0, 1, 0), Seg(0, 1, 1, 1)},
		{"vertical", Seg(0, 0, 0, 1), Seg(1, 0, 1, 1)},
		{"diagonal", Seg(0, 0, 1, 1), Seg(1, 0, 2, 1)},
		{"collinear_overlap", Seg(0, 0, 2, 0), Seg(1, 0, 3, 0)},
		{"collinear_disjoint", Seg(0, 0, 1, 0), Seg(2, 0, 3, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := Intersection(tc.l1, tc.l2, Precision)
			assert.False(t, ok)
		})
	}
}

// The supporting lines cross at (3, 0), which lies outside the first
// segment.
func TestIntersectionOutsideSegment(t *testing.T) {
	l1 := Seg(0, 0, 1, 0)
	l2 := Seg(3, -1, 3, 1)
	_, ok := l1.Intersect(l2)
	assert.False(t, ok)
}

func TestIntersectionAtEndpoint(t *testing.T) {
	l1 := Seg(0, 0, 1, 0)
	l2 := Seg(1, 0, 1, 1)
	p, ok := l1.Intersect(l2)
	require.True(t, ok)
	assert.True(t, p.Equal(Pt(1, 0)))
}

func TestIntersectionSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hits := 0
	for range 1000 {
		l1 := Seg(rng.Float64()*10, rng.Float64()*10, rng.Float64()*10, rng.Float64()*10)
		l2 := Seg(rng.Float64()*10, rng.Float64()*10, rng.Float64()*10, rng.Float64()*10)

		p12, ok12 := Intersection(l1, l2, Precision)
		p21, ok21 := Intersection(l2, l1, Precision)
		require.Equal(t, ok12, ok21)
		if ok12 {
			hits++
			assert.True(t, p12.Equal(p21), "%v != %v", p12, p21)
			assert.True(t, l1.Contains(p12, 1e-6))
			assert.True(t, l2.Contains(p12, 1e-6))
		}
	}
	assert.Positive(t, hits)
}

// Equal slopes never intersect, regardless of the coordinate scale.
func TestIntersectionEqualSlopeScaled(t *testing.T) {
	for _, scale := range []float64{1e-4, 1, 1e4} {
		l1 := Seg(0, 0, 3*scale, 1*scale)
		l2 := Seg(0, scale, 3*scale, 2*scale)
		_, ok := Intersection(l1, l2, Precision)
		assert.False(t, ok, "scale %g", scale)
	}
}

func TestContains(t *testing.T) {
	l := Seg(0, 0, 4, 0)
	assert.True(t, l.Contains(Pt(2, 0), Precision))
	assert.True(t, l.Contains(Pt(0, 0), Precision))
	assert.True(t, l.Contains(Pt(4, 0), Precision))
	assert.False(t, l.Contains(Pt(5, 0), Precision))
	assert.False(t, l.Contains(Pt(2, 0.1), Precision))
}

func TestSlope(t *testing.T) {
	m, ok := Seg(0, 0, 2, 1).Slope()
	assert.True(t, ok)
	assert.Equal(t, 0.5, m)

	m, ok = Seg(1, 0, 1, 3).Slope()
	assert.False(t, ok)
	assert.True(t, math.IsInf(m, 1))

	m, ok = Seg(1, 3, 1, 0).Slope()
	assert.False(t, ok)
	assert.True(t, math.IsInf(m, -1))

	m, ok = Seg(1, 1, 1, 1).Slope()
	assert.False(t, ok)
	assert.False(t, math.IsNaN(m))
}

func TestRiseRunLength(t *testing.T) {
	l := Seg(1, 2, 4, 6)
	rise, run := l.RiseRun()
	assert.Equal(t, 4.0, rise)
	assert.Equal(t, 3.0, run)
	assert.InDelta(t, 5, l.Length(), 1e-12)
}

func TestNormalAndOffset(t *testing.T) {
	l := Seg(0, 0, 1, 0)
	n, ok := l.Normal()
	require.True(t, ok)
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, 1, n.Y, 1e-12)

	q, ok := l.Offset(l.End, -0.25)
	require.True(t, ok)
	assert.True(t, q.Equal(Pt(1, -0.25)))

	_, ok = Seg(2, 2, 2, 2).Offset(Pt(2, 2), 1)
	assert.False(t, ok)
}

func TestPointEquality(t *testing.T) {
	assert.True(t, Pt(1, 1).Equal(Pt(1+Precision/2, 1-Precision/2)))
	assert.False(t, Pt(1, 1).Equal(Pt(1+2*Precision, 1)))
	assert.Equal(t, 2.0, Pt(1, 2).Y())
}

func TestRotateAround(t *testing.T) {
	p := Pt(2, 1).RotateAround(Pt(1, 1), math.Pi/2)
	assert.True(t, p.Equal(Pt(1, 2)), "got %v", p)
	assert.True(t, p.Pos == p.Tex)

	angle := Pt(0, 0).AngleTo(Pt(0, -1))
	assert.InDelta(t, -math.Pi/2, angle, 1e-12)
}
