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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/outline"
)

// WritePDF writes the boundaries of res as a single page PDF file.  The
// page is width×height points; the raster area is stretched to cover the
// page.  Loops are filled in light grey using the even-odd rule, so that
// holes stay white, and all boundary lines are stroked in black.
func WritePDF(fname string, res *outline.Result, width, height float64) error {
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Normalised coordinates have y pointing up, like PDF user space.
	a := res.Aspect
	if a == 0 {
		a = 1
	}
	page.Transform(matrix.Matrix{width / (2 * a), 0, 0, height / 2, width / 2, height / 2})

	hasLoops := false
	page.SetFillColor(color.DeviceGray(0.85))
	for _, b := range res.Boundaries {
		for _, loop := range b.Loops {
			if len(loop.Lines) == 0 {
				continue
			}
			hasLoops = true
			page.MoveTo(loop.Lines[0].Start.X(), loop.Lines[0].Start.Y())
			for _, l := range loop.Lines {
				page.LineTo(l.End.X(), l.End.Y())
			}
			page.ClosePath()
		}
	}
	if hasLoops {
		page.FillEvenOdd()
	}

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(2 / height) // about one point
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinRound)
	hasLines := false
	for _, b := range res.Boundaries {
		for _, l := range b.Lines {
			hasLines = true
			page.MoveTo(l.Start.X(), l.Start.Y())
			page.LineTo(l.End.X(), l.End.Y())
		}
	}
	if hasLines {
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
