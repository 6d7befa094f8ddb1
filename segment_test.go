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
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/outline/pixgrid"
)

// artGrid builds a grid from ASCII art, where '#' marks an opaque pixel.
func artGrid(t testing.TB, rows ...string) *pixgrid.Grid {
	t.Helper()
	w, h := len(rows[0]), len(rows)
	alpha := make([]uint8, w*h)
	for y, row := range rows {
		require.Len(t, row, w, "row %d", y)
		for x := range w {
			if row[x] == '#' {
				alpha[y*w+x] = 0xFF
			}
		}
	}
	g, err := pixgrid.FromAlpha(w, h, alpha)
	require.NoError(t, err)
	return g
}

func segment(t testing.TB, conn Connectivity, rows ...string) *Segmentation {
	t.Helper()
	seg, err := (&Segmenter{Connectivity: conn}).Segment(artGrid(t, rows...))
	require.NoError(t, err)
	return seg
}

func TestSegmentFullBlock(t *testing.T) {
	seg := segment(t, Conn4, "###", "###", "###")
	require.Len(t, seg.Islands, 1)

	is := seg.Islands[0]
	assert.Equal(t, 1, is.ID)
	assert.Len(t, is.Pixels, 9)
	assert.Equal(t, image.Point{}, is.Pixels[0])
	assert.Equal(t, image.Rect(0, 0, 3, 3), is.Bounds)

	seen := make(map[image.Point]bool)
	for _, p := range is.Pixels {
		assert.False(t, seen[p], "duplicate pixel %v", p)
		seen[p] = true
	}
}

func TestSegmentTwoBlocks(t *testing.T) {
	seg := segment(t, Conn4,
		"..........",
		".##.......",
		".##.......",
		"..........",
		"..........",
		"......##..",
		"......##..",
		"..........",
		"..........",
		"..........",
	)
	require.Len(t, seg.Islands, 2)
	for _, is := range seg.Islands {
		assert.Equal(t, 4, is.Len())
	}
	assert.NotEqual(t, seg.Islands[0].Marker, seg.Islands[1].Marker)
	assert.Equal(t, image.Point{X: 1, Y: 1}, seg.Islands[0].Pixels[0])
	assert.Equal(t, image.Point{X: 6, Y: 5}, seg.Islands[1].Pixels[0])
}

func TestSegmentConnectivity(t *testing.T) {
	rows := []string{
		"#.",
		".#",
	}
	assert.Len(t, segment(t, Conn4, rows...).Islands, 2)
	assert.Len(t, segment(t, Conn8, rows...).Islands, 1)
}

func TestSegmentEmpty(t *testing.T) {
	seg := segment(t, Conn4, "...", "...")
	assert.Empty(t, seg.Islands)
	for _, l := range seg.Labels {
		assert.Zero(t, l)
	}
}

func TestSegmentSinglePixel(t *testing.T) {
	seg := segment(t, Conn8, "#")
	require.Len(t, seg.Islands, 1)
	assert.Equal(t, []image.Point{{}}, seg.Islands[0].Pixels)
}

func TestSegmentThreshold(t *testing.T) {
	g, err := pixgrid.FromAlpha(3, 1, []uint8{10, 200, 10})
	require.NoError(t, err)

	seg, err := NewSegmenter().Segment(g)
	require.NoError(t, err)
	assert.Len(t, seg.Islands, 1)

	g.Threshold = 100
	seg, err = NewSegmenter().Segment(g)
	require.NoError(t, err)
	require.Len(t, seg.Islands, 1)
	assert.Equal(t, []image.Point{{X: 1}}, seg.Islands[0].Pixels)
}

func TestSegmentInvalidConnectivity(t *testing.T) {
	_, err := (&Segmenter{Connectivity: 7}).Segment(artGrid(t, "#"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSegmentDoesNotModifyGrid(t *testing.T) {
	g := artGrid(t, "#.#", "###")
	before := g.Clone()
	_, err := NewSegmenter().Segment(g)
	require.NoError(t, err)
	assert.Equal(t, before.Image().Pix, g.Image().Pix)
}

// TestSegmentPartition checks on random rasters that every opaque pixel
// belongs to exactly one island, and that the islands agree with an
// independent labelling.
func TestSegmentPartition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, conn := range []Connectivity{Conn4, Conn8} {
		for trial := range 20 {
			w, h := 1+rng.Intn(40), 1+rng.Intn(40)
			alpha := make([]uint8, w*h)
			for i := range alpha {
				if rng.Float64() < 0.45 {
					alpha[i] = 0xFF
				}
			}
			g, err := pixgrid.FromAlpha(w, h, alpha)
			require.NoError(t, err)

			seg, err := (&Segmenter{Connectivity: conn}).Segment(g)
			require.NoError(t, err)

			count := 0
			for _, is := range seg.Islands {
				count += is.Len()
				for _, p := range is.Pixels {
					assert.Equal(t, is.ID, seg.Label(p.X, p.Y))
					assert.True(t, p.In(is.Bounds))
				}
			}
			assert.Equal(t, g.CountOpaque(), count, "%s trial %d", conn, trial)

			want := referenceLabels(alpha, w, h, conn)
			assert.Equal(t, want, seg.Labels, "%s trial %d", conn, trial)
		}
	}
}

// referenceLabels labels the components of a mask with a recursive depth
// first search, numbering components in scan order of their first pixel.
func referenceLabels(alpha []uint8, w, h int, conn Connectivity) []int32 {
	labels := make([]int32, w*h)
	var visit func(x, y int, id int32)
	visit = func(x, y int, id int32) {
		if x < 0 || x >= w || y < 0 || y >= h {
			return
		}
		i := y*w + x
		if alpha[i] == 0 || labels[i] != 0 {
			return
		}
		labels[i] = id
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 || conn == Conn4 && dx != 0 && dy != 0 {
					continue
				}
				visit(x+dx, y+dy, id)
			}
		}
	}
	var next int32
	for y := range h {
		for x := range w {
			if alpha[y*w+x] != 0 && labels[y*w+x] == 0 {
				next++
				visit(x, y, next)
			}
		}
	}
	return labels
}

func TestRecolor(t *testing.T) {
	seg := segment(t, Conn4, "#.#", "#.#")
	img := seg.Recolor()
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())

	assert.Equal(t, MarkerColor(1), img.NRGBAAt(0, 1))
	assert.Equal(t, MarkerColor(2), img.NRGBAAt(2, 0))
	assert.Zero(t, img.NRGBAAt(1, 0).A)
}

func TestMarkerColor(t *testing.T) {
	c := MarkerColor(0x123456)
	assert.EqualValues(t, 0x12, c.R)
	assert.EqualValues(t, 0x34, c.G)
	assert.EqualValues(t, 0x56, c.B)
	assert.EqualValues(t, 0xFF, c.A)
}

func TestMarkerExhaustion(t *testing.T) {
	m := markerAllocator{last: maxMarker - 1}
	id, err := m.next()
	require.NoError(t, err)
	assert.Equal(t, maxMarker, id)

	_, err = m.next()
	assert.ErrorIs(t, err, ErrTooManyIslands)
}
