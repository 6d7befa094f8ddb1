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
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/outline"
)

// SVGStrokeWidth is the stroke width of the SVG output, in normalised
// units.
const SVGStrokeWidth = 0.01

// WriteSVG writes the boundaries of res as an SVG document.  Every loop
// becomes a <polygon> element; boundaries without loops are written as
// <line> elements.  The viewBox covers the normalised raster area, with y
// flipped so that the image appears upright.
func WriteSVG(w io.Writer, res *outline.Result) error {
	bw := bufio.NewWriter(w)
	a := res.Aspect
	if a == 0 {
		a = 1
	}

	fmt.Fprintf(bw, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"%s %s %s %s\">\n",
		res.Width, res.Height, num(-a), num(-1), num(2*a), num(2))
	fmt.Fprintf(bw, "<g fill=\"none\" stroke=\"black\" stroke-width=\"%s\">\n", num(SVGStrokeWidth))
	for _, b := range res.Boundaries {
		if len(b.Loops) > 0 {
			for _, loop := range b.Loops {
				fmt.Fprintf(bw, "<polygon data-island=\"%d\" data-hole=\"%t\" points=\"", b.Island, loop.Hole)
				for i, l := range loop.Lines {
					if i > 0 {
						bw.WriteByte(' ')
					}
					fmt.Fprintf(bw, "%s,%s", num(l.Start.X()), num(-l.Start.Y()))
				}
				bw.WriteString("\"/>\n")
			}
			continue
		}
		for _, l := range b.Lines {
			fmt.Fprintf(bw, "<line data-island=\"%d\" x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"/>\n",
				b.Island, num(l.Start.X()), num(-l.Start.Y()), num(l.End.X()), num(-l.End.Y()))
		}
	}
	bw.WriteString("</g>\n</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// num formats a coordinate for SVG output.
func num(x float64) string {
	if x == 0 {
		return "0" // avoid "-0"
	}
	return fmt.Sprintf("%.6g", x)
}
