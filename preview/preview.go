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

// Package preview rasterises traced geometry for inspection.
package preview

import (
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/vector"

	"seehuhn.de/go/outline/line"
)

// pixelMap maps normalised coordinates to continuous pixel coordinates of
// a width×height raster.
type pixelMap struct {
	sx, sy, tx, ty float64
}

func newPixelMap(width, height int, aspect float64) pixelMap {
	if aspect == 0 {
		aspect = 1
	}
	w, h := float64(width), float64(height)
	return pixelMap{sx: w / (2 * aspect), sy: -h / 2, tx: w / 2, ty: h / 2}
}

func (m pixelMap) apply(p line.Point) (float64, float64) {
	return m.sx*p.X() + m.tx, m.sy*p.Y() + m.ty
}

// RenderMesh rasterises a triangle list produced by the mesh builder into
// a width×height coverage image.  aspect is the factor applied to x
// coordinates by the pipeline.  A trailing incomplete triangle is ignored.
func RenderMesh(mesh []line.Point, width, height int, aspect float64) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}

	m := newPixelMap(width, height, aspect)
	r := vector.NewRasterizer(width, height)
	for i := 0; i+3 <= len(mesh); i += 3 {
		for j, p := range mesh[i : i+3] {
			x, y := m.apply(p)
			if j == 0 {
				r.MoveTo(float32(x), float32(y))
			} else {
				r.LineTo(float32(x), float32(y))
			}
		}
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(color.Alpha{A: 0xFF}), image.Point{})
	return img
}

// Overlay draws lines in red on top of src.  The lines are given in
// normalised coordinates for a raster of the size of src.
func Overlay(src image.Image, lines []line.Line, aspect float64) image.Image {
	dc := gg.NewContextForImage(src)
	b := src.Bounds()
	m := newPixelMap(b.Dx(), b.Dy(), aspect)

	dc.SetRGB(1, 0, 0)
	strokeLines(dc, m, lines)
	return dc.Image()
}

// Lines draws lines in black on a white width×height canvas.
func Lines(lines []line.Line, width, height int, aspect float64) image.Image {
	bg := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range bg.Pix {
		bg.Pix[i] = 0xFF
	}
	dc := gg.NewContextForImage(bg)
	m := newPixelMap(width, height, aspect)

	dc.SetRGB(0, 0, 0)
	strokeLines(dc, m, lines)
	return dc.Image()
}

func strokeLines(dc *gg.Context, m pixelMap, lines []line.Line) {
	dc.SetLineWidth(1)
	for _, l := range lines {
		x0, y0 := m.apply(l.Start)
		x1, y1 := m.apply(l.End)
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
	}
	dc.Stroke()
}

// SavePNG writes img to fname in PNG format, creating the parent
// directory if needed.
func SavePNG(fname string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(fname), 0755); err != nil {
		return err
	}
	return gg.SavePNG(fname, img)
}
