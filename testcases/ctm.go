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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:      "scale_2x",
		Path:      rectangle(0, 0, 20, 20),
		Width:     128,
		Height:    128,
		CTM:       matrix.Scale(2, 2).Translate(24, 24),
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "scale_half",
		Path:      frame(40, 40, 40, 16),
		Width:     64,
		Height:    64,
		CTM:       matrix.Scale(0.5, 0.5).Translate(12, 12),
		Threshold: 127,
		Islands4:  1, Islands8: 1, Holes: 1,
	},
	{
		Name:      "rotate_45deg",
		Path:      rectangle(-16, -16, 16, 16),
		Width:     64,
		Height:    64,
		CTM:       matrix.RotateDeg(45).Translate(32, 32),
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "rotate_90deg",
		Path:      rectangle(-15, -10, 15, 10),
		Width:     64,
		Height:    64,
		CTM:       matrix.RotateDeg(90).Translate(32, 32),
		Threshold: 127,
		Islands4:  1, Islands8: 1,
	},
	{
		Name:      "rotate_frame_30deg",
		Path:      frame(0, 0, 20, 8),
		Width:     64,
		Height:    64,
		CTM:       matrix.RotateDeg(30).Translate(32, 32),
		Threshold: 127,
		Islands4:  1, Islands8: 1, Holes: 1,
	},
}
