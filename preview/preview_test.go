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

package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/outline/line"
)

// square returns the outline of the pixel rectangle [x0, x1]×[y0, y1] on
// a size×size raster, in normalised coordinates.
func square(size int, x0, y0, x1, y1 float64) []line.Line {
	s := float64(size)
	n := func(x, y float64) line.Point {
		return line.Pt(x/s*2-1, -y/s*2+1)
	}
	a, b, c, d := n(x0, y0), n(x1, y0), n(x1, y1), n(x0, y1)
	return []line.Line{{Start: a, End: b}, {Start: b, End: c}, {Start: c, End: d}, {Start: d, End: a}}
}

// ribbon builds the stroke mesh of lines without importing the pipeline.
func ribbon(lines []line.Line, thickness float64) []line.Point {
	var mesh []line.Point
	for _, l := range lines {
		n, ok := l.Normal()
		if !ok {
			continue
		}
		off := n.Mul(thickness / 2)
		tl := line.FromVec(l.Start.Pos.Add(off))
		bl := line.FromVec(l.Start.Pos.Sub(off))
		tr := line.FromVec(l.End.Pos.Add(off))
		br := line.FromVec(l.End.Pos.Sub(off))
		mesh = append(mesh, tl, bl, br, br, tr, tl)
	}
	return mesh
}

func TestRenderMeshCoversBoundary(t *testing.T) {
	const size = 16
	lines := square(size, 4, 4, 12, 12)
	// two pixels wide in normalised units
	mesh := ribbon(lines, 4.0/size)

	img := RenderMesh(mesh, size, size, 1)
	require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())

	for _, p := range []image.Point{{3, 8}, {4, 8}, {11, 8}, {12, 8}, {8, 3}, {8, 4}, {8, 11}, {8, 12}} {
		assert.GreaterOrEqual(t, img.AlphaAt(p.X, p.Y).A, uint8(250), "pixel %v", p)
	}
	for _, p := range []image.Point{{0, 0}, {8, 8}, {1, 8}, {8, 14}} {
		assert.Zero(t, img.AlphaAt(p.X, p.Y).A, "pixel %v", p)
	}
}

func TestRenderMeshAspect(t *testing.T) {
	// a horizontal ribbon across the full width of a 2:1 raster
	l := line.Seg(-2, 0, 2, 0)
	mesh := ribbon([]line.Line{l}, 0.25)

	img := RenderMesh(mesh, 32, 16, 2)
	assert.GreaterOrEqual(t, img.AlphaAt(0, 8).A, uint8(250))
	assert.GreaterOrEqual(t, img.AlphaAt(31, 8).A, uint8(250))
	assert.Zero(t, img.AlphaAt(16, 2).A)
}

func TestRenderMeshEmpty(t *testing.T) {
	img := RenderMesh(nil, 4, 4, 1)
	for _, a := range img.Pix {
		assert.Zero(t, a)
	}
	assert.Empty(t, RenderMesh(nil, 0, 0, 1).Pix)
}

func TestOverlay(t *testing.T) {
	const size = 16
	src := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	img := Overlay(src, square(size, 4.5, 4.5, 11.5, 11.5), 1)
	require.Equal(t, src.Bounds(), img.Bounds())

	r, g, _, _ := img.At(4, 8).RGBA()
	assert.Greater(t, r, uint32(0x8000))
	assert.Zero(t, g)

	r, _, _, _ = img.At(8, 8).RGBA()
	assert.Zero(t, r)
}

func TestLines(t *testing.T) {
	img := Lines(square(16, 4.5, 4.5, 11.5, 11.5), 16, 16, 1)
	r, _, _, _ := img.At(4, 8).RGBA()
	assert.Less(t, r, uint32(0x8000))
	r, _, _, _ = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xFFFF), r)
}

func TestSavePNG(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "sub", "mesh.png")
	require.NoError(t, SavePNG(fname, RenderMesh(nil, 3, 2, 1)))

	f, err := os.Open(fname)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
}
