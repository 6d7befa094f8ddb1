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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/testcases"
)

func traceArt(t *testing.T, s outline.Strategy, rows ...string) *outline.Result {
	t.Helper()
	p := outline.NewPipeline()
	p.Strategy = s
	res, err := outline.TraceExample(testcases.TestCase{Art: rows}, p)
	require.NoError(t, err)
	return res
}

func TestWriteJSON(t *testing.T) {
	res := traceArt(t, outline.Contour,
		"###..",
		"#.#..",
		"###.#",
	)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))

	var doc Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 5, doc.Width)
	assert.Equal(t, 3, doc.Height)
	assert.Equal(t, len(res.Mesh), doc.MeshVertices)
	require.Len(t, doc.Islands, 2)

	ring := doc.Islands[0]
	assert.Equal(t, 1, ring.ID)
	assert.Equal(t, "#000001", ring.Marker)
	assert.Equal(t, 8, ring.Pixels)
	assert.Equal(t, [4]int{0, 0, 3, 3}, ring.Bounds)
	require.Len(t, ring.Loops, 2)
	assert.False(t, ring.Loops[0].Hole)
	assert.True(t, ring.Loops[1].Hole)
	assert.Len(t, ring.Loops[0].Points, 4)
	assert.Equal(t, [2]float64{-1, 1}, ring.Loops[0].Points[0])

	// a single pixel has no boundary
	dot := doc.Islands[1]
	assert.Equal(t, 1, dot.Pixels)
	assert.Empty(t, dot.Loops)
	assert.Empty(t, dot.Lines)
}

func TestWriteJSONLines(t *testing.T) {
	res := traceArt(t, outline.EdgeEmission, "##")

	var doc Document
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, res))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	require.Len(t, doc.Islands, 1)
	assert.Empty(t, doc.Islands[0].Loops)
	assert.Len(t, doc.Islands[0].Lines, len(res.Lines))
}

func TestWriteSVG(t *testing.T) {
	res := traceArt(t, outline.Contour,
		"###",
		"#.#",
		"###",
	)

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, res))

	root, err := svgparser.Parse(&buf, true)
	require.NoError(t, err)
	assert.Equal(t, "-1 -1 2 2", root.Attributes["viewBox"])

	polygons := root.FindAll("polygon")
	require.Len(t, polygons, 2)
	assert.Equal(t, "false", polygons[0].Attributes["data-hole"])
	assert.Equal(t, "true", polygons[1].Attributes["data-hole"])

	// SVG y points down, so the top-left corner of the raster is (-1, -1)
	pts := parsePoints(t, polygons[0].Attributes["points"])
	require.Len(t, pts, 4)
	assert.Equal(t, [2]float64{-1, -1}, pts[0])
	assert.Equal(t, [2]float64{1, -1}, pts[1])
	assert.Equal(t, [2]float64{1, 1}, pts[2])

	assert.Empty(t, root.FindAll("line"))
}

func TestWriteSVGLines(t *testing.T) {
	res := traceArt(t, outline.EdgeEmission, "##", "##")

	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, res))

	root, err := svgparser.Parse(&buf, true)
	require.NoError(t, err)
	assert.Empty(t, root.FindAll("polygon"))
	lines := root.FindAll("line")
	assert.Len(t, lines, len(res.Lines))
	for _, l := range lines {
		assert.Equal(t, "1", l.Attributes["data-island"])
	}
}

func parsePoints(t *testing.T, s string) [][2]float64 {
	t.Helper()
	var res [][2]float64
	for _, field := range strings.Fields(s) {
		xy := strings.Split(field, ",")
		require.Len(t, xy, 2, "point %q", field)
		x, err := strconv.ParseFloat(xy[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(xy[1], 64)
		require.NoError(t, err)
		res = append(res, [2]float64{x, y})
	}
	return res
}

func TestWritePDF(t *testing.T) {
	res := traceArt(t, outline.Contour,
		"####",
		"#..#",
		"####",
	)
	fname := filepath.Join(t.TempDir(), "ring.pdf")
	require.NoError(t, WritePDF(fname, res, 144, 108))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWritePDFEmpty(t *testing.T) {
	res := traceArt(t, outline.Contour, "..", "..")
	fname := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, WritePDF(fname, res, 72, 72))
}
