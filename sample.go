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

// SamplesPerCurve is the number of parameter values at which each cubic
// segment is evaluated.
const SamplesPerCurve = 50

// Sample is the state of a curve at one parameter value.
type Sample struct {
	Point vec.Vec2 // point on the curve

	// Normal is the unit tangent rotated by 90° counter-clockwise.
	Normal vec.Vec2

	// Signed is the negated canonical curvature.  Teeth with positive
	// values extend along Normal, which puts them on the convex side.
	Signed float64

	// Abs is the magnitude of the curvature.
	Abs float64
}

// SampleSegment evaluates the segment at n uniformly spaced parameter values
// t = i/(n-1), including both end points.  Parameter values where the
// tangent vanishes, or where the point is not finite, are left out.
//
// The second return value is false if fewer than two samples remain, since
// no tooth can be built from them.
func SampleSegment(seg Segment, n int) ([]Sample, bool) {
	if n <= 0 {
		return nil, false
	}

	samples := make([]Sample, 0, n)
	for i := range n {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}

		d := seg.Tangent(t)
		length := d.Length()
		if !(length >= tangentThreshold) {
			continue
		}
		pt := seg.Position(t)
		if !isFinite(pt) {
			continue
		}

		k := seg.Curvature(t)
		samples = append(samples, Sample{
			Point:  pt,
			Normal: vec.Vec2{X: -d.Y / length, Y: d.X / length},
			Signed: -k,
			Abs:    math.Abs(k),
		})
	}

	if len(samples) < 2 {
		return nil, false
	}
	return samples, true
}

// tangentThreshold is the smallest tangent length for which a normal
// direction is computed.
const tangentThreshold = 1e-10
