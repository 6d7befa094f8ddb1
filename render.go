// Package outline converts alpha-masked rasters into vector geometry.
//
// A [Pipeline] runs the stages in order: the [Segmenter] partitions the
// opaque pixels into islands, the [Tracer] turns every island into
// boundary lines in normalised coordinates, and the [MeshBuilder] expands
// the lines into a triangle mesh of constant stroke width.  The
// [FlowSimulator] steers a line segment through the traced boundaries.
package outline

//go:generate go run ./testcases/export

import "seehuhn.de/go/outline/testcases"

// TraceExample runs p on the raster of a test case, using the occupancy
// threshold of the test case.
func TraceExample(tc testcases.TestCase, p *Pipeline) (*Result, error) {
	q := *p
	q.Threshold = tc.Threshold
	return q.Run(tc.Image())
}
