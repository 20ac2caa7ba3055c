// seehuhn.de/go/comb - curvature combs for glyph outlines
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
	"math"

	"seehuhn.de/go/comb"
)

var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Box:    em,
		Width:  64,
		Height: 64,
	},
	{
		Name:     "lines_only",
		Contours: []comb.Contour{closed(l(100, 100), l(900, 100), l(500, 900))},
		Box:      em,
		Width:    64,
		Height:   64,
	},
	{
		// the tangent vanishes at both ends, so the end samples are left out
		Name:     "stationary_handles",
		Contours: []comb.Contour{open(c(100, 100), o(100, 100), o(900, 900), c(900, 900))},
		Box:      em,
		Width:    128,
		Height:   128,
	},
	{
		Name: "coincident",
		Contours: []comb.Contour{
			closed(c(500, 500), o(500, 500), o(500, 500)),
			ellipse(500, 500, 300, 300, true),
		},
		Box:    em,
		Width:  128,
		Height: 128,
	},
	{
		// a broken node interrupts the contour; the remaining arcs still
		// get a comb
		Name: "bad_node",
		Contours: []comb.Contour{closed(
			cs(900, 500), o(900, 721), o(721, 900),
			cs(500, 900), o(279, 900), o(100, 721),
			cs(100, 500), o(100, 279), o(math.NaN(), 100),
			cs(500, 100), o(721, 100), o(900, 279),
		)},
		Box:    em,
		Width:  128,
		Height: 128,
	},
	{
		// a single cubic which starts and ends at the same node
		Name:     "short_closed",
		Contours: []comb.Contour{closed(c(200, 200), o(1000, 200), o(200, 1000))},
		Box:      em,
		Width:    128,
		Height:   128,
	},
	{
		// the curvature saturates, so all teeth are too long
		Name:     "tiny",
		Contours: []comb.Contour{ellipse(500, 500, 0.5, 0.5, true)},
		Box:      em,
		Width:    64,
		Height:   64,
	},
}
