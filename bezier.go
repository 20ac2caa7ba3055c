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

// Segment is a cubic Bézier curve.  P0 and P3 are the end points, P1 and P2
// are the control points.
type Segment struct {
	P0, P1, P2, P3 vec.Vec2
}

// Position returns the point of the curve at parameter t.
// Values of t outside [0, 1] are clamped.
func (s Segment) Position(t float64) vec.Vec2 {
	t = clamp01(t)

	// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
	omt := 1 - t
	omt2 := omt * omt
	t2 := t * t
	p := s.P0.Mul(omt2 * omt).
		Add(s.P1.Mul(3 * omt2 * t)).
		Add(s.P2.Mul(3 * omt * t2)).
		Add(s.P3.Mul(t2 * t))
	if !isFinite(p) {
		return vec.Vec2{}
	}
	return p
}

// Tangent returns the first derivative B'(t) of the curve.
// Values of t outside [0, 1] are clamped.
func (s Segment) Tangent(t float64) vec.Vec2 {
	t = clamp01(t)

	// B'(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
	omt := 1 - t
	d := s.P1.Sub(s.P0).Mul(3 * omt * omt).
		Add(s.P2.Sub(s.P1).Mul(6 * omt * t)).
		Add(s.P3.Sub(s.P2).Mul(3 * t * t))
	if !isFinite(d) {
		return vec.Vec2{}
	}
	return d
}

// Acceleration returns the second derivative B''(t) of the curve.
// Values of t outside [0, 1] are clamped.
func (s Segment) Acceleration(t float64) vec.Vec2 {
	t = clamp01(t)

	// B''(t) = 6(1-t)(P2-2P1+P0) + 6t(P3-2P2+P1)
	a := s.P2.Sub(s.P1.Mul(2)).Add(s.P0).Mul(6 * (1 - t)).
		Add(s.P3.Sub(s.P2.Mul(2)).Add(s.P1).Mul(6 * t))
	if !isFinite(a) {
		return vec.Vec2{}
	}
	return a
}

// Curvature returns the signed curvature of the curve at parameter t.
//
// The sign is positive where the curve turns counter-clockwise (in a y-up
// coordinate system).  Where the speed of the parametrisation is nearly
// zero, the curvature is reported as 0.  The result is saturated to the
// range [-1, 1], so that near-cusps do not produce unusable combs.
func (s Segment) Curvature(t float64) float64 {
	d := s.Tangent(t)
	a := s.Acceleration(t)

	speed2 := d.X*d.X + d.Y*d.Y
	if speed2 < stationaryThreshold {
		return 0
	}

	k := (d.X*a.Y - d.Y*a.X) / math.Pow(speed2, 1.5)
	switch {
	case math.IsNaN(k):
		return 0
	case k > maxCurvature:
		return maxCurvature
	case k < -maxCurvature:
		return -maxCurvature
	}
	return k
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Numerical limits of the curvature computation.
const (
	// stationaryThreshold is the smallest squared speed |B'(t)|² for which
	// the curvature is computed.
	stationaryThreshold = 1e-10

	// maxCurvature is the largest curvature magnitude reported by
	// [Segment.Curvature].
	maxCurvature = 1.0
)
