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

// Package line implements the geometric primitives used by the outline
// pipeline: points carrying a render position and a texture coordinate,
// and line segments between them.
package line

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Precision is the tolerance used for point equality and for the
// point-on-segment test when no explicit epsilon is given.
const Precision = 1e-6

// Point is a vertex with a render-space position and an independent
// texture coordinate.
type Point struct {
	Pos vec.Vec2 // position in render space
	Tex vec.Vec2 // texture or parametric coordinate
}

// Pt returns a point at (x, y) whose texture coordinate equals its position.
func Pt(x, y float64) Point {
	v := vec.Vec2{X: x, Y: y}
	return Point{Pos: v, Tex: v}
}

// FromVec returns a point at v whose texture coordinate equals its position.
func FromVec(v vec.Vec2) Point {
	return Point{Pos: v, Tex: v}
}

// X returns the x component of the position.
func (p Point) X() float64 { return p.Pos.X }

// Y returns the y component of the position.
func (p Point) Y() float64 { return p.Pos.Y }

// Equal reports whether both position coordinates of p and q agree
// within Precision.
func (p Point) Equal(q Point) bool {
	return p.Near(q, Precision)
}

// Near reports whether both position coordinates of p and q agree
// within eps.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.Pos.X-q.Pos.X) < eps && math.Abs(p.Pos.Y-q.Pos.Y) < eps
}

// Dist returns the Euclidean distance between the positions of p and q.
func (p Point) Dist(q Point) float64 {
	return q.Pos.Sub(p.Pos).Length()
}

// AngleTo returns the direction from p to q in radians, in (-π, π].
func (p Point) AngleTo(q Point) float64 {
	d := q.Pos.Sub(p.Pos)
	return math.Atan2(d.Y, d.X)
}

// RotateAround returns p rotated by theta radians (counter-clockwise for a
// y-up coordinate system) around the position of c.  The texture
// coordinate follows the position.
func (p Point) RotateAround(c Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	d := p.Pos.Sub(c.Pos)
	r := vec.Vec2{
		X: c.Pos.X + d.X*cos - d.Y*sin,
		Y: c.Pos.Y + d.X*sin + d.Y*cos,
	}
	return FromVec(r)
}

// Translate returns p moved by d.  Both coordinates are shifted.
func (p Point) Translate(d vec.Vec2) Point {
	return Point{Pos: p.Pos.Add(d), Tex: p.Tex.Add(d)}
}
