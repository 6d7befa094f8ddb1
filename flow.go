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
	"math"

	"seehuhn.de/go/outline/line"
)

// FlowSimulator moves a flow segment through a set of boundary lines.
// Whenever the flow crosses a boundary, its end is rotated around its
// start towards the direction of the boundary.
type FlowSimulator struct {
	// Steps is the number of simulation steps.  The simulation always runs
	// all steps; there is no convergence test.
	Steps int

	// Deflection is the rotation in radians applied per step while the
	// flow crosses a boundary.
	Deflection float64

	// Advance makes the flow move forward by its own vector on steps
	// without a crossing.  If Advance is false, such steps leave the flow
	// unchanged.
	Advance bool

	// Precision is the tolerance used for the intersection tests.
	Precision float64
}

// NewFlowSimulator returns a FlowSimulator with 1000 steps, a deflection
// of 0.01 radians and Advance enabled.
func NewFlowSimulator() *FlowSimulator {
	return &FlowSimulator{
		Steps:      defaultFlowSteps,
		Deflection: defaultDeflection,
		Advance:    true,
		Precision:  line.Precision,
	}
}

// Flow is the result of a simulation.
type Flow struct {
	// Path holds the flow segment after every step.
	Path []line.Line

	// Contacts holds the intersection points of all steps with a
	// crossing, in step order.
	Contacts []line.Point
}

// Hits returns the number of steps where the flow crossed a boundary.
func (f *Flow) Hits() int { return len(f.Contacts) }

// Last returns the final flow segment, or the zero line for an empty
// simulation.
func (f *Flow) Last() line.Line {
	if len(f.Path) == 0 {
		return line.Line{}
	}
	return f.Path[len(f.Path)-1]
}

// HorizontalFlow returns a flow segment from (x0, y) to (x1, y).
func HorizontalFlow(x0, x1, y float64) line.Line {
	return line.Horizontal(x0, x1, y)
}

// Simulate runs the simulation for the flow segment start.  In every step
// the first boundary (in the order given) crossing the flow is used.
func (f *FlowSimulator) Simulate(start line.Line, boundaries []line.Line) Flow {
	res := Flow{Path: make([]line.Line, 0, max(f.Steps, 0))}
	fl := start
	for range f.Steps {
		hit := false
		for _, b := range boundaries {
			p, ok := line.Intersection(fl, b, f.Precision)
			if !ok {
				continue
			}
			hit = true
			res.Contacts = append(res.Contacts, p)

			diff := foldHalfTurn(b.Angle() - fl.Angle())
			if diff > 0 {
				fl.End = fl.End.RotateAround(fl.Start, f.Deflection)
			} else if diff < 0 {
				fl.End = fl.End.RotateAround(fl.Start, -f.Deflection)
			}
			break
		}
		if !hit && f.Advance {
			fl = fl.Translate(fl.Dir())
		}
		res.Path = append(res.Path, fl)
	}
	return res
}

// foldHalfTurn maps an angle difference to (-π/2, π/2].  Boundaries have
// no preferred direction, so directions differing by π are equivalent.
func foldHalfTurn(d float64) float64 {
	d = math.Remainder(d, 2*math.Pi) // [-π, π]
	if d > math.Pi/2 {
		d -= math.Pi
	} else if d <= -math.Pi/2 {
		d += math.Pi
	}
	return d
}

const (
	defaultFlowSteps  = 1000
	defaultDeflection = 0.01
)
