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

import "errors"

// Errors returned by the pipeline.  Degenerate geometry, missing
// intersections and empty rasters are not errors; they produce empty or
// skipped output instead.
var (
	// ErrEmptyRaster is returned for a nil raster or a raster with zero
	// width or height.
	ErrEmptyRaster = errors.New("outline: empty raster")

	// ErrInvalidThickness is returned for a negative or non-finite stroke
	// thickness.
	ErrInvalidThickness = errors.New("outline: invalid stroke thickness")

	// ErrInvalidConfig is returned for an unknown connectivity or tracing
	// strategy.
	ErrInvalidConfig = errors.New("outline: invalid configuration")

	// ErrTooManyIslands is returned when a raster contains more islands
	// than there are 24-bit marker colours.
	ErrTooManyIslands = errors.New("outline: too many islands")
)
