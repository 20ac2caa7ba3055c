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

package comb

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Tooth is one quadrilateral of a curvature comb.
type Tooth struct {
	// Quad holds the corners in drawing order: the base point of the
	// first sample, the base point of the second sample, the tip of the
	// second sample, and the tip of the first sample.
	Quad [4]vec.Vec2

	// Levels are the normalised curvatures at the two base points.
	Levels [2]float64

	Color Color
}

// BuildTooth constructs the tooth between two neighbouring samples of the
// same segment.  The tooth length at each base point is the signed
// curvature of that sample multiplied by scale.  Colours are computed from
// the mean curvature magnitude of the two samples, normalised by r.
//
// The second return value is false if the tooth is longer than
// [MaxToothLength] at either end.
func BuildTooth(a, b Sample, r Range, scale, exponent float64) (Tooth, bool) {
	la := toothLength(a, scale)
	lb := toothLength(b, scale)
	if !(math.Abs(la) <= MaxToothLength && math.Abs(lb) <= MaxToothLength) {
		return Tooth{}, false
	}

	tooth := Tooth{
		Quad: [4]vec.Vec2{
			a.Point,
			b.Point,
			b.Point.Add(b.Normal.Mul(lb)),
			a.Point.Add(a.Normal.Mul(la)),
		},
		Levels: [2]float64{r.Normalize(a.Abs), r.Normalize(b.Abs)},
		Color:  Gradient((a.Abs+b.Abs)/2, r, exponent),
	}
	return tooth, true
}

// toothLength returns the signed length of a tooth at sample s.
func toothLength(s Sample, scale float64) float64 {
	if !(s.Abs > 0) {
		return 0
	}
	return math.Copysign(s.Abs, s.Signed) * scale
}

// MaxToothLength is the largest tooth length (in outline units) which is
// drawn.  Longer teeth come from numerical spikes near cusps.
const MaxToothLength = 10000
