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

import "seehuhn.de/go/comb"

var glyphCases = []TestCase{
	{
		// outer contour and counter, each with its own curvature range
		Name: "o",
		Contours: []comb.Contour{
			ellipse(500, 350, 330, 360, true),
			ellipse(500, 350, 210, 270, false),
		},
		Box:    em,
		Width:  256,
		Height: 256,
	},
	{
		Name: "d",
		Contours: []comb.Contour{
			closed(
				l(620, 0), l(720, 0), l(720, 760), l(620, 760),
				l(620, 420), o(580, 500), o(500, 540),
				cs(400, 540), o(220, 540), o(100, 420),
				cs(100, 260), o(100, 90), o(220, -20),
				cs(400, -20), o(500, -20), o(580, 30),
			),
			closed(
				cs(620, 260), o(620, 370), o(530, 450),
				cs(420, 450), o(290, 450), o(210, 370),
				cs(210, 260), o(210, 150), o(290, 70),
				cs(420, 70), o(530, 70), o(620, 150),
			),
		},
		Box:    em,
		Width:  256,
		Height: 256,
	},
	{
		Name: "s",
		Contours: []comb.Contour{closed(
			cs(480, 560), o(380, 560), o(330, 515),
			cs(330, 455), o(330, 395), o(390, 370),
			cs(470, 345), o(580, 310), o(650, 260),
			cs(650, 160), o(650, 40), o(550, -20),
			cs(420, -20), o(290, -20), o(190, 40),
			c(150, 110), l(230, 150),
			o(270, 90), o(340, 60),
			cs(420, 60), o(510, 60), o(560, 100),
			cs(560, 160), o(560, 215), o(510, 240),
			cs(430, 265), o(320, 300), o(240, 345),
			cs(240, 450), o(240, 560), o(340, 640),
			cs(480, 640), o(580, 640), o(650, 590),
			c(690, 530), l(610, 490),
			o(580, 530), o(535, 560),
		)},
		Box:    em,
		Width:  256,
		Height: 256,
	},
	{
		// TrueType contours have no cubic segments and get no comb
		Name: "truetype",
		Contours: []comb.Contour{closed(
			q(500, 700), o(700, 700), o(700, 500), q(700, 0), l(300, 0), o(300, 700),
		)},
		Box:    em,
		Width:  256,
		Height: 256,
	},
	{
		// an open path, as used for stroked glyph designs
		Name: "open_c",
		Contours: []comb.Contour{open(
			cs(800, 650), o(700, 750), o(600, 800),
			cs(480, 800), o(260, 800), o(120, 620),
			cs(120, 400), o(120, 180), o(260, 0),
			cs(480, 0), o(600, 0), o(700, 50),
			cs(800, 150),
		)},
		Box:    em,
		Width:  256,
		Height: 256,
	},
}
