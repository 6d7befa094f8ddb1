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

package testcases

import "seehuhn.de/go/geom/path"

var shapeCases = []TestCase{
	{
		Name:      "rectangle",
		Path:      rectangle(10, 10, 44, 44),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "triangle",
		Path:      triangle(10, 50, 32, 10, 54, 50),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "diamond",
		Path:      diamond(32, 32, 24),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "frame",
		Path:      frame(32, 32, 20, 8),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1, Holes: 1,
	},
	{
		Name:      "two_rectangles",
		Path:      addRectangle(rectangle(4, 4, 20, 28), 36, 8, 60, 56),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  2, Islands8: 2,
	},
	{
		Name:      "wide",
		Path:      rectangle(8, 4, 120, 28),
		Width:     128,
		Height:    32,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// diamond builds a square rotated by 45 degrees.
func diamond(cx, cy, r float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx, cy-r)).
		LineTo(pt(cx+r, cy)).
		LineTo(pt(cx, cy+r)).
		LineTo(pt(cx-r, cy)).
		Close()
}
