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

	"seehuhn.de/go/geom/vec"
)

// Line is a directed segment from Start to End.
type Line struct {
	Start, End Point
}

// Seg returns the line from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 float64) Line {
	return Line{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// Horizontal returns the line from (x0, y) to (x1, y).
func Horizontal(x0, x1, y float64) Line {
	return Seg(x0, y, x1, y)
}

// Rise returns End.Y - Start.Y.
func (l Line) Rise() float64 { return l.End.Pos.Y - l.Start.Pos.Y }

// Run returns End.X - Start.X.
func (l Line) Run() float64 { return l.End.Pos.X - l.Start.Pos.X }

// RiseRun returns both Rise and Run.
func (l Line) RiseRun() (rise, run float64) {
	return l.Rise(), l.Run()
}

// Dir returns the vector from Start to End.
func (l Line) Dir() vec.Vec2 {
	return l.End.Pos.Sub(l.Start.Pos)
}

// Length returns the Euclidean length of the line.
func (l Line) Length() float64 {
	return l.Dir().Length()
}

// Slope returns rise/run.  For vertical lines (run exactly zero) ok is
// false and m is +Inf or -Inf, following the sign of the rise.  A
// zero-length line reports +Inf.
func (l Line) Slope() (m float64, ok bool) {
	rise, run := l.RiseRun()
	if run == 0 {
		if rise < 0 {
			return math.Inf(-1), false
		}
		return math.Inf(1), false
	}
	return rise / run, true
}

// Angle returns the direction of the line in radians, in (-π, π].
func (l Line) Angle() float64 {
	return l.Start.AngleTo(l.End)
}

// Degenerate reports whether the line is shorter than eps.
func (l Line) Degenerate(eps float64) bool {
	return l.Length() < eps
}

// Normal returns the unit normal, rotated 90° counter-clockwise from the
// direction of the line.  The second return value is false for
// zero-length lines, where no normal exists.
func (l Line) Normal() (vec.Vec2, bool) {
	d := l.Dir()
	length := d.Length()
	if length < zeroLengthThreshold {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: -d.Y / length, Y: d.X / length}, true
}

// Offset returns the point obtained by moving p by dev units along the
// normal of l.  Positive dev moves to the side of the normal.  For a
// zero-length line, p is returned unchanged and ok is false.
func (l Line) Offset(p Point, dev float64) (q Point, ok bool) {
	n, ok := l.Normal()
	if !ok {
		return p, false
	}
	return FromVec(p.Pos.Add(n.Mul(dev))), true
}

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{Start: l.End, End: l.Start}
}

// Midpoint returns the point half way between the endpoints.
func (l Line) Midpoint() Point {
	return FromVec(l.Start.Pos.Add(l.End.Pos).Mul(0.5))
}

// Translate returns the line moved by d.
func (l Line) Translate(d vec.Vec2) Line {
	return Line{Start: l.Start.Translate(d), End: l.End.Translate(d)}
}

// Contains reports whether p lies on the finite segment, using the
// equality case of the triangle inequality:
// dist(p, Start) + dist(p, End) - Length < eps.
func (l Line) Contains(p Point, eps float64) bool {
	return p.Dist(l.Start)+p.Dist(l.End)-l.Length() < eps
}

// Intersection returns the point where the segments l1 and l2 cross.
// Parallel and collinear segments, and segments whose supporting lines
// cross outside either segment, report ok == false.
//
// The lines are brought into the general form a·x + b·y = c with
// a = Δy, b = -Δx and c = a·x₀ + b·y₀, and the resulting 2×2 system is
// solved by Cramer's rule.  The determinant is compared against eps
// scaled by both lengths, so that the parallel test does not depend on
// the coordinate scale.
func Intersection(l1, l2 Line, eps float64) (p Point, ok bool) {
	a1, b1 := l1.Rise(), -l1.Run()
	c1 := a1*l1.Start.Pos.X + b1*l1.Start.Pos.Y
	a2, b2 := l2.Rise(), -l2.Run()
	c2 := a2*l2.Start.Pos.X + b2*l2.Start.Pos.Y

	delta := a1*b2 - a2*b1
	if math.Abs(delta) <= eps*l1.Length()*l2.Length() {
		return Point{}, false
	}

	p = Pt((b2*c1-b1*c2)/delta, (a1*c2-a2*c1)/delta)
	if !l1.Contains(p, eps) || !l2.Contains(p, eps) {
		return Point{}, false
	}
	return p, true
}

// Intersect is Intersection with the default Precision.
func (l Line) Intersect(other Line) (Point, bool) {
	return Intersection(l, other, Precision)
}

// zeroLengthThreshold is the minimum length for a line to have a
// direction.  Shorter lines are treated as points.
const zeroLengthThreshold = 1e-12
