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

var basicCases = []TestCase{
	{
		Name:     "single_pixel",
		Art:      []string{"#"},
		Islands4: 1, Islands8: 1,
	},
	{
		Name: "block",
		Art: []string{
			"###",
			"###",
			"###",
		},
		Islands4: 1, Islands8: 1,
	},
	{
		Name: "two_blocks",
		Art: []string{
			"..........",
			".##.......",
			".##.......",
			"..........",
			"..........",
			"......##..",
			"......##..",
			"..........",
			"..........",
			"..........",
		},
		Islands4: 2, Islands8: 2,
	},
	{
		Name: "diagonal",
		Art: []string{
			"#.",
			".#",
		},
		Islands4: 2, Islands8: 1,
	},
	{
		Name: "ring",
		Art: []string{
			"###",
			"#.#",
			"###",
		},
		Islands4: 1, Islands8: 1, Holes: 1,
	},
	{
		Name: "two_holes",
		Art: []string{
			"#####",
			"#.#.#",
			"#####",
		},
		Islands4: 1, Islands8: 1, Holes: 2,
	},
	{
		Name: "nested",
		Art: []string{
			"#####",
			"#...#",
			"#.#.#",
			"#...#",
			"#####",
		},
		Islands4: 2, Islands8: 2, Holes: 1,
	},
	{
		Name: "l_shape",
		Art: []string{
			"#..",
			"#..",
			"###",
		},
		Islands4: 1, Islands8: 1,
	},
	{
		Name: "u_shape",
		Art: []string{
			"###.###",
			"###.###",
			"#######",
		},
		Islands4: 1, Islands8: 1,
	},
	{
		Name: "checkerboard",
		Art: []string{
			"#.#.",
			".#.#",
			"#.#.",
			".#.#",
		},
		Islands4: 8, Islands8: 1,
	},
	{
		Name: "edge_touching",
		Art: []string{
			"##..##",
			"#....#",
			"......",
			"#....#",
			"##..##",
		},
		Islands4: 4, Islands8: 4,
	},
	{
		Name:     "empty",
		Art:      []string{"....", "...."},
		Islands4: 0, Islands8: 0,
	},
}
