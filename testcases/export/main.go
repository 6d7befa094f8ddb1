// Command export traces all test cases and writes the results to JSON.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/outline"
	"seehuhn.de/go/outline/export"
	"seehuhn.de/go/outline/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	p := outline.NewPipeline()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(p, category, tc)
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string           `json:"name"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Threshold uint8            `json:"threshold"`
	Art       []string         `json:"art,omitempty"`
	Path      []jsonSegment    `json:"path,omitempty"`
	Islands4  int              `json:"islands4"`
	Islands8  int              `json:"islands8"`
	Holes     int              `json:"holes"`
	Traced    *export.Document `json:"traced"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(p *outline.Pipeline, category string, tc testcases.TestCase) (jsonTestCase, error) {
	w, h := tc.Size()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     w,
		Height:    h,
		Threshold: tc.Threshold,
		Art:       tc.Art,
		Islands4:  tc.Islands4,
		Islands8:  tc.Islands8,
		Holes:     tc.Holes,
	}
	if tc.Path != nil {
		jtc.Path = pathToJSON(tc.Path.Iter())
	}

	res, err := outline.TraceExample(tc, p)
	if err != nil {
		return jsonTestCase{}, err
	}
	jtc.Traced = export.NewDocument(res)
	return jtc, nil
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
