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

// Package export writes traced outlines in JSON, SVG and PDF format.
//
// All writers use the normalised coordinates of the pipeline, where the
// raster covers [-aspect, aspect]×[-1, 1] with y pointing up.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/line"
)

// Document is the JSON representation of a pipeline result.
type Document struct {
	Width        int      `json:"width"`
	Height       int      `json:"height"`
	Aspect       float64  `json:"aspect"`
	Islands      []Island `json:"islands"`
	MeshVertices int      `json:"mesh_vertices"`
}

// Island is the JSON representation of one island and its boundary.
type Island struct {
	ID      int          `json:"id"`
	Marker  string       `json:"marker"`
	Pixels  int          `json:"pixels"`
	Bounds  [4]int       `json:"bounds"` // min x, min y, max x, max y (exclusive)
	Loops   []Loop       `json:"loops,omitempty"`
	Lines   [][4]float64 `json:"lines,omitempty"`
	Partial bool         `json:"partial,omitempty"`
}

// Loop is the JSON representation of a closed boundary loop.  The loop
// closes from the last point back to the first.
type Loop struct {
	Hole   bool         `json:"hole,omitempty"`
	Points [][2]float64 `json:"points"`
}

// NewDocument converts a pipeline result into its JSON representation.
// Boundaries with loops are stored as point lists, other boundaries as
// individual lines.
func NewDocument(res *outline.Result) *Document {
	doc := &Document{
		Width:        res.Width,
		Height:       res.Height,
		Aspect:       res.Aspect,
		MeshVertices: len(res.Mesh),
		Islands:      []Island{},
	}
	for i, is := range res.Segmentation.Islands {
		m := is.Marker
		ji := Island{
			ID:     is.ID,
			Marker: fmt.Sprintf("#%02x%02x%02x", m.R, m.G, m.B),
			Pixels: is.Len(),
			Bounds: [4]int{is.Bounds.Min.X, is.Bounds.Min.Y, is.Bounds.Max.X, is.Bounds.Max.Y},
		}
		if i < len(res.Boundaries) {
			b := &res.Boundaries[i]
			ji.Partial = b.Partial
			if len(b.Loops) > 0 {
				for _, loop := range b.Loops {
					ji.Loops = append(ji.Loops, Loop{Hole: loop.Hole, Points: loopPoints(loop.Lines)})
				}
			} else {
				for _, l := range b.Lines {
					ji.Lines = append(ji.Lines, [4]float64{l.Start.X(), l.Start.Y(), l.End.X(), l.End.Y()})
				}
			}
		}
		doc.Islands = append(doc.Islands, ji)
	}
	return doc
}

// WriteJSON writes the JSON representation of res to w.
func WriteJSON(w io.Writer, res *outline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func loopPoints(lines []line.Line) [][2]float64 {
	pts := make([][2]float64, len(lines))
	for i, l := range lines {
		pts[i] = [2]float64{l.Start.X(), l.Start.Y()}
	}
	return pts
}
