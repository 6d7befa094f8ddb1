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
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"runtime"
	"sync"

	"seehuhn.de/go/outline/line"
	"seehuhn.de/go/outline/pixgrid"
)

// DefaultThickness is the stroke thickness used by NewPipeline, in
// normalised units.
const DefaultThickness = 0.01

// Pipeline converts a raster into islands, boundary lines and a stroke
// mesh.
type Pipeline struct {
	// Threshold is the occupancy threshold: pixels with alpha above
	// Threshold are opaque.
	Threshold uint8

	// Connectivity selects 4- or 8-neighbour adjacency for segmentation.
	Connectivity Connectivity

	// Strategy selects the boundary tracing algorithm.
	Strategy Strategy

	// Thickness is the stroke width of the mesh in normalised units.
	Thickness float64

	// AspectCorrect scales x coordinates by width/height.
	AspectCorrect bool

	// Workers is the number of goroutines tracing islands.  0 uses one
	// worker per CPU, 1 traces sequentially.
	Workers int
}

// NewPipeline returns a Pipeline with threshold 0, 4-connectivity, the
// Contour strategy and DefaultThickness.
func NewPipeline() *Pipeline {
	return &Pipeline{
		Connectivity: Conn4,
		Strategy:     Contour,
		Thickness:    DefaultThickness,
	}
}

// Result holds the output of a pipeline run.
type Result struct {
	Width, Height int

	// Aspect is the factor applied to x coordinates, 1 without aspect
	// correction.
	Aspect float64

	Segmentation *Segmentation

	// Boundaries holds one entry per island, in island order.
	Boundaries []Boundary

	// Lines holds the lines of all boundaries, in island order.
	Lines []line.Line

	// Mesh is the stroke mesh of Lines.
	Mesh []line.Point
}

// Partial returns the number of boundaries that were traced only partially.
func (r *Result) Partial() int {
	n := 0
	for i := range r.Boundaries {
		if r.Boundaries[i].Partial {
			n++
		}
	}
	return n
}

// Validate checks the configuration.
func (p *Pipeline) Validate() error {
	if p.Thickness < 0 || math.IsNaN(p.Thickness) || math.IsInf(p.Thickness, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidThickness, p.Thickness)
	}
	if p.Connectivity != Conn4 && p.Connectivity != Conn8 {
		return fmt.Errorf("%w: connectivity %s", ErrInvalidConfig, p.Connectivity)
	}
	switch p.Strategy {
	case Contour, EdgeEmission, GreedyWalk:
	default:
		return fmt.Errorf("%w: strategy %s", ErrInvalidConfig, p.Strategy)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, p.Workers)
	}
	return nil
}

// Run processes img.  The image is not modified.  A raster without opaque
// pixels is not an error; it gives a result without islands.
func (p *Pipeline) Run(img image.Image) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g, err := pixgrid.New(img)
	if errors.Is(err, pixgrid.ErrEmpty) {
		return nil, ErrEmptyRaster
	} else if err != nil {
		return nil, err
	}
	g.Threshold = p.Threshold
	return p.RunGrid(g)
}

// RunGrid processes a raster which has already been loaded into a Grid.
func (p *Pipeline) RunGrid(g *pixgrid.Grid) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	seg, err := (&Segmenter{Connectivity: p.Connectivity}).Segment(g)
	if err != nil {
		return nil, fmt.Errorf("segmentation: %w", err)
	}
	log.Debug("segmented raster",
		slog.Int("width", seg.Width),
		slog.Int("height", seg.Height),
		slog.String("connectivity", p.Connectivity.String()),
		slog.Int("islands", len(seg.Islands)))

	tracer := &Tracer{Strategy: p.Strategy, AspectCorrect: p.AspectCorrect}
	boundaries, err := p.traceAll(tracer, seg)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Width:        seg.Width,
		Height:       seg.Height,
		Aspect:       1,
		Segmentation: seg,
		Boundaries:   boundaries,
	}
	if p.AspectCorrect {
		res.Aspect = float64(seg.Width) / float64(seg.Height)
	}
	for i := range boundaries {
		b := &boundaries[i]
		if b.Partial {
			log.Warn("boundary traced partially",
				slog.Int("island", b.Island),
				slog.Int("pixels", seg.Islands[i].Len()))
		}
		res.Lines = append(res.Lines, b.Lines...)
	}
	log.Debug("traced boundaries",
		slog.String("strategy", p.Strategy.String()),
		slog.Int("lines", len(res.Lines)))

	res.Mesh = BuildMesh(p.Thickness, res.Lines)
	log.Debug("built mesh",
		slog.Float64("thickness", p.Thickness),
		slog.Int("vertices", len(res.Mesh)))

	return res, nil
}

// traceAll traces every island of seg.  The islands are split into
// contiguous chunks, one per worker, so the result order does not depend
// on scheduling.
func (p *Pipeline) traceAll(tracer *Tracer, seg *Segmentation) ([]Boundary, error) {
	n := len(seg.Islands)
	res := make([]Boundary, n)

	numWorkers := p.Workers
	if numWorkers == 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	numWorkers = min(numWorkers, n)
	if numWorkers <= 1 {
		for i, is := range seg.Islands {
			b, err := tracer.Trace(seg, is)
			if err != nil {
				return nil, fmt.Errorf("island %d: %w", is.ID, err)
			}
			res[i] = b
		}
		return res, nil
	}

	var wg sync.WaitGroup
	var firstError error
	var errMu sync.Mutex

	perWorker := (n + numWorkers - 1) / numWorkers
	for start := 0; start < n; start += perWorker {
		end := min(start+perWorker, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				is := seg.Islands[i]
				b, err := tracer.Trace(seg, is)
				if err != nil {
					errMu.Lock()
					if firstError == nil {
						firstError = fmt.Errorf("island %d: %w", is.ID, err)
					}
					errMu.Unlock()
					return
				}
				res[i] = b
			}
		}(start, end)
	}
	wg.Wait()

	if firstError != nil {
		return nil, firstError
	}
	return res, nil
}

// Simulate runs the flow simulator sim over the boundary lines of r.
func (r *Result) Simulate(sim *FlowSimulator, start line.Line) Flow {
	flow := sim.Simulate(start, r.Lines)
	Logger().Debug("simulated flow",
		slog.Int("steps", len(flow.Path)),
		slog.Int("hits", flow.Hits()))
	return flow
}
