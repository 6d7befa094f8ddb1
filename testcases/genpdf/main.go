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
// Command genpdf traces all test cases and writes one PDF per test case,
// showing the traced boundaries.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
	"seehuhn.de/go/outline/testcases"
)

const outDir = "testdata/outline"

// minPageSize is the smallest page dimension in points, so that tiny
// fixtures remain legible.
const minPageSize = 144

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	p := outline.NewPipeline()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			if err := generatePDF(p, tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(p *outline.Pipeline, tc testcases.TestCase, pdfPath string) error {
	res, err := outline.TraceExample(tc, p)
	if err != nil {
		return err
	}

	// Page size in points, one point per pixel for large fixtures.
	w, h := float64(res.Width), float64(res.Height)
	if s := minPageSize / min(w, h); s > 1 {
		w *= s
		h *= s
	}
	return export.WritePDF(pdfPath, res, w, h)
}
