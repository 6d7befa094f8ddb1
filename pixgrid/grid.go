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

// Package pixgrid provides bounds-checked access to the pixels of a source
// raster.
//
// A Grid always owns its pixels: New copies the source image into an NRGBA
// buffer with its origin at (0, 0), so later stages never modify the
// caller's image.
package pixgrid

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrEmpty is returned by New for a nil image or an image with zero width
// or height.
var ErrEmpty = errors.New("pixgrid: empty raster")

// Grid is an owned copy of a raster image with an occupancy threshold.
//
// A Grid is safe for concurrent reads.
type Grid struct {
	// Threshold is the occupancy threshold: a pixel is opaque if its alpha
	// value is strictly greater than Threshold.  The zero value makes every
	// pixel with non-zero alpha opaque.
	Threshold uint8

	img *image.NRGBA
}

// New returns a Grid holding a copy of src.
func New(src image.Image) (*Grid, error) {
	if src == nil {
		return nil, ErrEmpty
	}
	b := src.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	return &Grid{img: img}, nil
}

// FromAlpha returns a Grid of the given size where the alpha value of
// pixel (x, y) is alpha[y*width+x] and the colour is white.
func FromAlpha(width, height int, alpha []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 || len(alpha) < width*height {
		return nil, ErrEmpty
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, a := range alpha[:width*height] {
		img.Pix[4*i+0] = 0xFF
		img.Pix[4*i+1] = 0xFF
		img.Pix[4*i+2] = 0xFF
		img.Pix[4*i+3] = a
	}
	return &Grid{img: img}, nil
}

// Width returns the width of the raster in pixels.
func (g *Grid) Width() int { return g.img.Rect.Dx() }

// Height returns the height of the raster in pixels.
func (g *Grid) Height() int { return g.img.Rect.Dy() }

// Bounds returns the pixel rectangle of the raster, with origin (0, 0).
func (g *Grid) Bounds() image.Rectangle { return g.img.Rect }

// In reports whether (x, y) lies inside the raster.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.img.Rect.Max.X && y >= 0 && y < g.img.Rect.Max.Y
}

// Alpha returns the alpha value of pixel (x, y).  The second return value
// is false if the coordinate lies outside the raster.
func (g *Grid) Alpha(x, y int) (uint8, bool) {
	if !g.In(x, y) {
		return 0, false
	}
	return g.img.Pix[g.img.PixOffset(x, y)+3], true
}

// Opaque reports whether pixel (x, y) exists and its alpha value is above
// the occupancy threshold.
func (g *Grid) Opaque(x, y int) bool {
	a, ok := g.Alpha(x, y)
	return ok && a > g.Threshold
}

// At returns the colour of pixel (x, y).  Out-of-range coordinates give
// the transparent colour and false.
func (g *Grid) At(x, y int) (color.NRGBA, bool) {
	if !g.In(x, y) {
		return color.NRGBA{}, false
	}
	return g.img.NRGBAAt(x, y), true
}

// Set changes the colour of pixel (x, y).  Out-of-range coordinates are
// ignored.
func (g *Grid) Set(x, y int, c color.NRGBA) {
	if g.In(x, y) {
		g.img.SetNRGBA(x, y, c)
	}
}

// CountOpaque returns the number of opaque pixels.
func (g *Grid) CountOpaque() int {
	n := 0
	pix := g.img.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > g.Threshold {
			n++
		}
	}
	return n
}

// Image returns the pixel buffer of the grid.  The buffer is shared with
// the Grid.
func (g *Grid) Image() *image.NRGBA { return g.img }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	img := image.NewNRGBA(g.img.Rect)
	copy(img.Pix, g.img.Pix)
	return &Grid{Threshold: g.Threshold, img: img}
}
