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
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/outline/pixgrid"
)

// Connectivity selects which neighbours of a pixel are adjacent to it.
type Connectivity int

const (
	// Conn4 joins pixels that share an edge.
	Conn4 Connectivity = iota
	// Conn8 joins pixels that share an edge or a corner.
	Conn8
)

func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// offsets returns the neighbour offsets for c.
func (c Connectivity) offsets() []image.Point {
	if c == Conn8 {
		return neighbours8
	}
	return neighbours4
}

var neighbours4 = []image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// neighbours8 lists the eight neighbour offsets in the order E, SE, S, SW,
// W, NW, N, NE (y pointing down).  The greedy contour walk relies on this
// order as its search priority.
var neighbours8 = []image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Island is a maximal connected set of opaque pixels.
type Island struct {
	// ID is the label of the island, starting at 1 in scan order.
	ID int

	// Marker is the unique opaque colour representing the island in the
	// recoloured raster.
	Marker color.NRGBA

	// Pixels lists the pixels of the island in fill order.  Pixels[0] is
	// the seed, the topmost-leftmost pixel of the island.
	Pixels []image.Point

	// Bounds is the smallest rectangle containing all pixels.
	Bounds image.Rectangle
}

// Len returns the number of pixels in the island.
func (is *Island) Len() int { return len(is.Pixels) }

// Segmentation is the result of partitioning a raster into islands.
type Segmentation struct {
	Width, Height int

	// Labels holds one entry per pixel in row-major order: 0 for
	// background, otherwise the ID of the island containing the pixel.
	Labels []int32

	// Islands lists the islands ordered by ID; Islands[k-1].ID == k.
	Islands []*Island

	conn Connectivity
}

// Label returns the island ID at (x, y), or 0 for background and
// out-of-range coordinates.
func (s *Segmentation) Label(x, y int) int {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	return int(s.Labels[y*s.Width+x])
}

// Connectivity returns the adjacency used to build the segmentation.
func (s *Segmentation) Connectivity() Connectivity { return s.conn }

// Recolor returns an image where every island pixel is painted in the
// island's marker colour and background pixels are transparent.
func (s *Segmentation) Recolor() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	for _, is := range s.Islands {
		for _, p := range is.Pixels {
			img.SetNRGBA(p.X, p.Y, is.Marker)
		}
	}
	return img
}

// maxMarker is the largest island ID representable as a 24-bit colour.
const maxMarker = 1<<24 - 1

// MarkerColor returns the marker colour for the island with the given ID.
// The ID is packed into the red, green and blue channels; alpha is always
// 255, so no marker equals the transparent background.
func MarkerColor(id int) color.NRGBA {
	return color.NRGBA{
		R: uint8(id >> 16),
		G: uint8(id >> 8),
		B: uint8(id),
		A: 0xFF,
	}
}

// markerAllocator hands out sequential island IDs.
type markerAllocator struct {
	last int
}

func (m *markerAllocator) next() (int, error) {
	if m.last >= maxMarker {
		return 0, ErrTooManyIslands
	}
	m.last++
	return m.last, nil
}

// Segmenter partitions the opaque pixels of a raster into islands using a
// breadth-first flood fill.
//
// A Segmenter reuses its internal queue between calls and is not safe for
// concurrent use.
type Segmenter struct {
	// Connectivity selects 4- or 8-neighbour adjacency.
	Connectivity Connectivity

	queue []image.Point
}

// NewSegmenter returns a Segmenter using 4-connectivity.
func NewSegmenter() *Segmenter {
	return &Segmenter{Connectivity: Conn4}
}

// Segment labels every opaque pixel of g.  Every opaque pixel ends up in
// exactly one island; a raster without opaque pixels gives an empty
// island list.  The grid is not modified.
func (s *Segmenter) Segment(g *pixgrid.Grid) (*Segmentation, error) {
	if s.Connectivity != Conn4 && s.Connectivity != Conn8 {
		return nil, fmt.Errorf("%w: connectivity %s", ErrInvalidConfig, s.Connectivity)
	}

	w, h := g.Width(), g.Height()
	seg := &Segmentation{
		Width:  w,
		Height: h,
		Labels: make([]int32, w*h),
		conn:   s.Connectivity,
	}

	var markers markerAllocator
	for y := range h {
		for x := range w {
			if seg.Labels[y*w+x] != 0 || !g.Opaque(x, y) {
				continue
			}
			id, err := markers.next()
			if err != nil {
				return nil, err
			}
			seg.Islands = append(seg.Islands, s.fill(g, seg, image.Point{X: x, Y: y}, id))
		}
	}
	return seg, nil
}

// fill floods the island containing seed with the label id.
//
// A pixel may be enqueued by several neighbours before it is labelled, so
// the label is checked again on dequeue and duplicates are dropped there.
func (s *Segmenter) fill(g *pixgrid.Grid, seg *Segmentation, seed image.Point, id int) *Island {
	w := seg.Width
	is := &Island{
		ID:     id,
		Marker: MarkerColor(id),
		Bounds: image.Rectangle{Min: seed, Max: seed.Add(image.Point{X: 1, Y: 1})},
	}
	offsets := s.Connectivity.offsets()

	s.queue = append(s.queue[:0], seed)
	for head := 0; head < len(s.queue); head++ {
		p := s.queue[head]
		idx := p.Y*w + p.X
		if seg.Labels[idx] != 0 || !g.Opaque(p.X, p.Y) {
			continue
		}
		seg.Labels[idx] = int32(id)
		is.Pixels = append(is.Pixels, p)

		is.Bounds.Min.X = min(is.Bounds.Min.X, p.X)
		is.Bounds.Min.Y = min(is.Bounds.Min.Y, p.Y)
		is.Bounds.Max.X = max(is.Bounds.Max.X, p.X+1)
		is.Bounds.Max.Y = max(is.Bounds.Max.Y, p.Y+1)

		for _, d := range offsets {
			q := p.Add(d)
			if !g.In(q.X, q.Y) || seg.Labels[q.Y*w+q.X] != 0 {
				continue
			}
			s.queue = append(s.queue, q)
		}
	}

	s.queue = s.queue[:0]
	return is
}
