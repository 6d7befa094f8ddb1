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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/outline/line"
)

// Strategy selects how the Tracer turns an island into lines.
type Strategy int

const (
	// Contour follows the pixel edges between the island and its
	// surroundings, links them into closed loops (one outer loop and one
	// loop per hole) and merges collinear runs into single lines.
	Contour Strategy = iota

	// EdgeEmission emits one short line from the centre of every island
	// pixel towards each of its 8 neighbours which is transparent or
	// outside the raster.  The result is an unordered fringe, suitable for
	// thickening but not for polygon algorithms.
	EdgeEmission

	// GreedyWalk walks from pixel centre to pixel centre along the
	// boundary pixels of the island, always taking the first unvisited
	// neighbour in the order E, SE, S, SW, W, NW, N, NE, and closes the
	// path when no continuation exists.  The walk does not backtrack, so
	// shapes with one-pixel necks may be traced only partially.
	GreedyWalk
)

func (s Strategy) String() string {
	switch s {
	case Contour:
		return "contour"
	case EdgeEmission:
		return "edges"
	case GreedyWalk:
		return "greedy"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Loop is a closed sequence of lines: the end of each line is the start
// of the next, and the last line ends at the start of the first.
type Loop struct {
	Lines []line.Line

	// Hole is set for loops which enclose background inside the island.
	Hole bool
}

// Boundary is the traced outline of one island.
type Boundary struct {
	// Island is the ID of the traced island.
	Island int

	// Loops holds the closed loops found by the Contour and GreedyWalk
	// strategies.  It is empty for EdgeEmission.
	Loops []Loop

	// Lines holds all lines of the boundary; for loop-based strategies
	// these are the lines of all loops, in loop order.
	Lines []line.Line

	// Partial is set by GreedyWalk when the walk ended before all
	// boundary pixels were visited.
	Partial bool
}

// Path returns the boundary as a path: one closed subpath per loop, or
// one open subpath per line for a fringe without loops.
func (b *Boundary) Path() *path.Data {
	p := &path.Data{}
	if len(b.Loops) > 0 {
		for _, loop := range b.Loops {
			if len(loop.Lines) == 0 {
				continue
			}
			p = p.MoveTo(loop.Lines[0].Start.Pos)
			for _, l := range loop.Lines {
				p = p.LineTo(l.End.Pos)
			}
			p = p.Close()
		}
		return p
	}
	for _, l := range b.Lines {
		p = p.MoveTo(l.Start.Pos).LineTo(l.End.Pos)
	}
	return p
}

// Transform returns the affine map from continuous pixel coordinates
// (origin at the top-left corner of the raster, y pointing down, pixel
// centres at i+0.5) to normalised render coordinates: x is mapped to
// [-1, 1] and y to [1, -1].  If aspect is set, x is additionally scaled by
// width/height.
func Transform(width, height int, aspect bool) matrix.Matrix {
	sx := 2 / float64(width)
	tx := -1.0
	if aspect {
		a := float64(width) / float64(height)
		sx *= a
		tx *= a
	}
	return matrix.Matrix{sx, 0, 0, -2 / float64(height), tx, 1}
}

// NormalizedBounds returns the rectangle covered by the raster in
// normalised coordinates.
func NormalizedBounds(width, height int, aspect bool) rect.Rect {
	a := 1.0
	if aspect {
		a = float64(width) / float64(height)
	}
	return rect.Rect{LLx: -a, LLy: -1, URx: a, URy: 1}
}

// Tracer converts islands into boundary lines in normalised coordinates.
//
// A Tracer keeps no state between calls and may be used concurrently.
type Tracer struct {
	// Strategy selects the tracing algorithm.
	Strategy Strategy

	// AspectCorrect scales x coordinates by width/height so that the
	// outline keeps the proportions of the raster.
	AspectCorrect bool
}

// NewTracer returns a Tracer using the Contour strategy without aspect
// correction.
func NewTracer() *Tracer {
	return &Tracer{Strategy: Contour}
}

// Trace computes the boundary of the island is, which must belong to seg.
// Islands consisting of a single pixel have an empty boundary.
func (t *Tracer) Trace(seg *Segmentation, is *Island) (Boundary, error) {
	b := Boundary{Island: is.ID}
	if is.Len() < 2 {
		return b, nil
	}

	ctm := Transform(seg.Width, seg.Height, t.AspectCorrect)
	switch t.Strategy {
	case Contour:
		b.Loops = traceContour(seg, is, ctm)
		for _, loop := range b.Loops {
			b.Lines = append(b.Lines, loop.Lines...)
		}
	case EdgeEmission:
		b.Lines = traceEdges(seg, is, ctm)
	case GreedyWalk:
		loop, partial := traceGreedy(seg, is, ctm)
		if len(loop.Lines) > 0 {
			b.Loops = []Loop{loop}
			b.Lines = loop.Lines
		}
		b.Partial = partial
	default:
		return Boundary{}, fmt.Errorf("%w: strategy %s", ErrInvalidConfig, t.Strategy)
	}
	return b, nil
}

// apply maps the continuous pixel coordinate (x, y) through ctm.
func apply(ctm matrix.Matrix, x, y float64) line.Point {
	return line.Pt(
		ctm[0]*x+ctm[2]*y+ctm[4],
		ctm[1]*x+ctm[3]*y+ctm[5],
	)
}

// traceEdges implements the EdgeEmission strategy.
func traceEdges(seg *Segmentation, is *Island, ctm matrix.Matrix) []line.Line {
	w, h := float64(seg.Width), float64(seg.Height)
	var lines []line.Line
	for _, p := range is.Pixels {
		cx, cy := float64(p.X)+0.5, float64(p.Y)+0.5
		for _, d := range neighbours8 {
			q := p.Add(d)
			if seg.Label(q.X, q.Y) != 0 {
				continue
			}
			// Neighbours outside the raster end on the raster border.
			qx := min(max(float64(q.X)+0.5, 0), w)
			qy := min(max(float64(q.Y)+0.5, 0), h)
			lines = append(lines, line.Line{
				Start: apply(ctm, cx, cy),
				End:   apply(ctm, qx, qy),
			})
		}
	}
	return lines
}

// isBoundaryPixel reports whether p belongs to the island id and has at
// least one 8-neighbour outside the island.
func isBoundaryPixel(seg *Segmentation, id int, p image.Point) bool {
	if seg.Label(p.X, p.Y) != id {
		return false
	}
	for _, d := range neighbours8 {
		q := p.Add(d)
		if seg.Label(q.X, q.Y) != id {
			return true
		}
	}
	return false
}

// traceGreedy implements the GreedyWalk strategy.  The second return
// value reports whether boundary pixels were left unvisited.
func traceGreedy(seg *Segmentation, is *Island, ctm matrix.Matrix) (Loop, bool) {
	bounds := is.Bounds
	bw := bounds.Dx()
	visited := make([]bool, bw*bounds.Dy())
	at := func(p image.Point) int {
		return (p.Y-bounds.Min.Y)*bw + (p.X - bounds.Min.X)
	}

	total := 0
	for _, p := range is.Pixels {
		if isBoundaryPixel(seg, is.ID, p) {
			total++
		}
	}

	cur := is.Pixels[0]
	visited[at(cur)] = true
	walk := []image.Point{cur}
	for {
		found := false
		for _, d := range neighbours8 {
			q := cur.Add(d)
			if !q.In(bounds) || visited[at(q)] || !isBoundaryPixel(seg, is.ID, q) {
				continue
			}
			visited[at(q)] = true
			walk = append(walk, q)
			cur = q
			found = true
			break
		}
		if !found {
			break
		}
	}

	var loop Loop
	if len(walk) >= 2 {
		pts := make([]line.Point, len(walk))
		for i, p := range walk {
			pts[i] = apply(ctm, float64(p.X)+0.5, float64(p.Y)+0.5)
		}
		loop.Lines = closeLoop(pts)
	}
	return loop, len(walk) < total
}

// closeLoop returns the lines joining consecutive points, including the
// line from the last point back to the first.
func closeLoop(pts []line.Point) []line.Line {
	lines := make([]line.Line, len(pts))
	for i, p := range pts {
		lines[i] = line.Line{Start: p, End: pts[(i+1)%len(pts)]}
	}
	return lines
}

// Directions of the pixel edges followed by traceContour, in pixel space
// with y pointing down.  Turning right means going from dirEast to
// dirSouth.
const (
	dirEast = iota
	dirSouth
	dirWest
	dirNorth
)

var dirStep = [4]image.Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// crack is a unit pixel edge separating an island pixel from a pixel
// outside the island.  Cracks are oriented so that the island lies to the
// right, which makes outer loops run clockwise on screen.
type crack struct {
	from image.Point // lattice vertex, in pixel coordinates
	dir  int
}

// traceContour implements the Contour strategy.
func traceContour(seg *Segmentation, is *Island, ctm matrix.Matrix) []Loop {
	id := is.ID
	bounds := is.Bounds

	// Lattice vertices of the island bounds, including the far corners.
	vw := bounds.Dx() + 1
	vertex := func(p image.Point) int {
		return (p.Y-bounds.Min.Y)*vw + (p.X - bounds.Min.X)
	}
	outs := make([][2]int32, vw*(bounds.Dy()+1))
	for i := range outs {
		outs[i] = [2]int32{-1, -1}
	}

	var cracks []crack
	add := func(from image.Point, dir int) {
		k := int32(len(cracks))
		cracks = append(cracks, crack{from: from, dir: dir})
		v := vertex(from)
		if outs[v][0] < 0 {
			outs[v][0] = k
		} else {
			outs[v][1] = k
		}
	}

	// Scanning in row-major order makes the first crack the top edge of
	// the seed pixel, which lies on the outer boundary.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if seg.Label(x, y) != id {
				continue
			}
			if seg.Label(x, y-1) != id {
				add(image.Point{X: x, Y: y}, dirEast)
			}
			if seg.Label(x+1, y) != id {
				add(image.Point{X: x + 1, Y: y}, dirSouth)
			}
			if seg.Label(x, y+1) != id {
				add(image.Point{X: x + 1, Y: y + 1}, dirWest)
			}
			if seg.Label(x-1, y) != id {
				add(image.Point{X: x, Y: y + 1}, dirNorth)
			}
		}
	}

	// At a vertex where two island pixels touch only at a corner, two
	// cracks leave the vertex.  With 4-connectivity the loop stays with the
	// pixel it is following (turn right); with 8-connectivity it crosses
	// over to the diagonal pixel (turn left).
	turn := 1
	if seg.conn == Conn8 {
		turn = 3
	}

	used := make([]bool, len(cracks))
	var loops []Loop
	for start := range cracks {
		if used[start] {
			continue
		}

		var verts []image.Point
		var dirs []int
		cur := start
		for {
			used[cur] = true
			c := cracks[cur]
			verts = append(verts, c.from)
			dirs = append(dirs, c.dir)

			end := c.from.Add(dirStep[c.dir])
			next := -1
			for _, k := range outs[vertex(end)] {
				if k < 0 || (used[k] && int(k) != start) {
					continue
				}
				if next < 0 || cracks[k].dir == (c.dir+turn)%4 {
					next = int(k)
				}
			}
			if next < 0 || next == start {
				break
			}
			cur = next
		}

		corners := mergeCollinear(verts, dirs)
		if len(corners) < 3 {
			continue
		}
		mapped := make([]line.Point, len(corners))
		for i, p := range corners {
			mapped[i] = apply(ctm, float64(p.X), float64(p.Y))
		}
		loops = append(loops, Loop{
			Lines: closeLoop(mapped),
			Hole:  signedArea(corners) < 0,
		})
	}
	return loops
}

// mergeCollinear returns the vertices where the direction of the loop
// changes.  verts[i] is the start of a unit step in direction dirs[i].
func mergeCollinear(verts []image.Point, dirs []int) []image.Point {
	n := len(verts)
	var corners []image.Point
	for i := range n {
		if dirs[i] != dirs[(i+n-1)%n] {
			corners = append(corners, verts[i])
		}
	}
	return corners
}

// signedArea returns twice the signed area of the polygon in pixel space.
// With y pointing down, loops running clockwise on screen are positive.
func signedArea(pts []image.Point) int {
	area := 0
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}
