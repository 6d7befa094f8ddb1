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

package outline

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/outline/line"
)

// VerticesPerLine is the number of mesh vertices emitted for every
// non-degenerate line: two triangles.
const VerticesPerLine = 6

// strokeSegment is a line prepared for meshing.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	N    vec.Vec2 // unit normal (90° CCW from the direction A→B)
}

// MeshBuilder expands lines into a triangle list approximating a ribbon of
// constant width along every line.
//
// Lines are meshed independently: there are no joins between consecutive
// lines, so corners show small gaps or overlaps when the thickness is
// large compared to the line length.
type MeshBuilder struct {
	// Thickness is the width of the ribbon, in the units of the line
	// coordinates.  A thickness of 0 gives zero-area triangles.
	Thickness float64

	segs []strokeSegment
}

// NewMeshBuilder returns a MeshBuilder with the given thickness.
func NewMeshBuilder(thickness float64) *MeshBuilder {
	return &MeshBuilder{Thickness: thickness}
}

// Build returns the mesh for the given lines.  The result holds
// VerticesPerLine vertices for every line of non-zero length, to be read
// as an unindexed list of counter-clockwise triangles.  Zero-length lines
// are skipped.  Every vertex uses its position as texture coordinate.
func (m *MeshBuilder) Build(lines []line.Line) []line.Point {
	m.segs = m.segs[:0]
	for _, l := range lines {
		n, ok := l.Normal()
		if !ok {
			continue // zero-length line has no normal
		}
		m.segs = append(m.segs, strokeSegment{A: l.Start.Pos, B: l.End.Pos, N: n})
	}

	d := m.Thickness / 2
	mesh := make([]line.Point, 0, VerticesPerLine*len(m.segs))
	for _, s := range m.segs {
		off := s.N.Mul(d)
		topLeft := line.FromVec(s.A.Add(off))
		botLeft := line.FromVec(s.A.Sub(off))
		topRight := line.FromVec(s.B.Add(off))
		botRight := line.FromVec(s.B.Sub(off))
		mesh = append(mesh,
			topLeft, botLeft, botRight,
			botRight, topRight, topLeft,
		)
	}
	return mesh
}

// BuildMesh returns the stroke mesh of the given thickness for lines.
func BuildMesh(thickness float64, lines []line.Line) []line.Point {
	return NewMeshBuilder(thickness).Build(lines)
}

// LinePoints returns the endpoints of all lines, two vertices per line, for
// rendering as a line list.
func LinePoints(lines []line.Line) []line.Point {
	pts := make([]line.Point, 0, 2*len(lines))
	for _, l := range lines {
		pts = append(pts, l.Start, l.End)
	}
	return pts
}

// Rectangle returns the display quad used when no raster is loaded: two
// triangles covering [-aspect, aspect]×[-1, 1], with texture coordinates
// covering [0, 1]×[0, 1].
func Rectangle(aspect float64) []line.Point {
	corner := func(sx, sy float64) line.Point {
		return line.Point{
			Pos: vec.Vec2{X: sx * aspect, Y: sy},
			Tex: vec.Vec2{X: sx/2 + 0.5, Y: sy/2 + 0.5},
		}
	}
	return []line.Point{
		corner(-1, 1), corner(-1, -1), corner(1, -1),
		corner(1, -1), corner(1, 1), corner(-1, 1),
	}
}
