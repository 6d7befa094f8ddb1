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

// Package testcases provides raster fixtures for the outline pipeline.
//
// A fixture is either drawn as ASCII art, where '#' marks an opaque pixel,
// or described as a vector path which is rasterised with anti-aliasing.
// Every fixture records the number of islands and holes the pipeline is
// expected to find.
package testcases

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single raster fixture.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	// Art holds the rows of an ASCII fixture.  '#' is opaque, every other
	// character is transparent.  If Art is set, Path, CTM, Width and
	// Height are ignored.
	Art []string

	Path   *path.Data    // the geometry to rasterise, filled with the non-zero rule
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels

	// Threshold is the occupancy threshold to use for the fixture.
	// Anti-aliased fixtures use 127, so that only pixels covered by at
	// least half count as opaque.
	Threshold uint8

	Islands4 int // expected number of islands with 4-connectivity
	Islands8 int // expected number of islands with 8-connectivity
	Holes    int // expected number of hole loops with 4-connectivity
}

// Size returns the raster size of the test case.
func (tc TestCase) Size() (width, height int) {
	if tc.Art != nil {
		w := 0
		for _, row := range tc.Art {
			w = max(w, len(row))
		}
		return w, len(tc.Art)
	}
	return tc.Width, tc.Height
}

// Image returns the raster of the test case.
func (tc TestCase) Image() *image.Alpha {
	w, h := tc.Size()
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	if tc.Art != nil {
		for y, row := range tc.Art {
			for x, c := range []byte(row) {
				if c == '#' {
					img.SetAlpha(x, y, color.Alpha{A: 0xFF})
				}
			}
		}
		return img
	}

	ctm := tc.CTM
	if ctm == (matrix.Matrix{}) {
		ctm = matrix.Identity
	}
	tr := func(v vec.Vec2) (float32, float32) {
		return float32(ctm[0]*v.X + ctm[2]*v.Y + ctm[4]),
			float32(ctm[1]*v.X + ctm[3]*v.Y + ctm[5])
	}

	r := vector.NewRasterizer(w, h)
	open := false
	for cmd, pts := range tc.Path.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(tr(pts[0]))
			open = true
		case path.CmdLineTo:
			r.LineTo(tr(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			r.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			r.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(color.Alpha{A: 0xFF}), image.Point{})
	return img
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// rectangle builds a rectangular path.  Swapping x1 and x2 reverses the
// orientation.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2)
}

func addRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// frame builds a square ring.  The inner square runs in the opposite
// direction, so the non-zero rule leaves it empty.
func frame(cx, cy, outer, inner float64) *path.Data {
	p := rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	return addRectangle(p, cx+inner, cy-inner, cx-inner, cy+inner)
}
