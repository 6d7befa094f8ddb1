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

import (
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:      "circle",
		Path:      circle(32, 32, 25),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "ellipse",
		Path:      ellipse(32, 32, 28, 14),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "ring",
		Path:      ring(32, 32, 28.8, 19.2),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  1, Islands8: 1, Holes: 1,
	},
	{
		Name:      "circles",
		Path:      addCircle(addCircle(circle(16, 16, 10), 48, 16, 10), 32, 46, 12),
		Width:     64,
		Height:    64,
		Threshold: 127,
		Islands4:  3, Islands8: 3,
	},
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r)
}

func addCircle(p *path.Data, cx, cy, r float64) *path.Data {
	return addEllipse(p, cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry)
}

func addEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return p.
		MoveTo(pt(cx+rx, cy)).                                      // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).  // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).  // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).  // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).  // bottom-right quadrant
		Close()
}

// ring builds an "O" shape: the outer circle runs counter-clockwise on
// screen, the inner circle clockwise.
func ring(cx, cy, outerR, innerR float64) *path.Data {
	p := circle(cx, cy, outerR)
	k := innerR * kappa
	return p.
		MoveTo(pt(cx+innerR, cy)).
		CubeTo(pt(cx+innerR, cy+k), pt(cx+k, cy+innerR), pt(cx, cy+innerR)).
		CubeTo(pt(cx-k, cy+innerR), pt(cx-innerR, cy+k), pt(cx-innerR, cy)).
		CubeTo(pt(cx-innerR, cy-k), pt(cx-k, cy-innerR), pt(cx, cy-innerR)).
		CubeTo(pt(cx+k, cy-innerR), pt(cx+innerR, cy-k), pt(cx+innerR, cy)).
		Close()
}
