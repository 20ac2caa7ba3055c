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
	"fmt"
	"math"
)

// Color is a non-premultiplied RGB colour with an opacity in [0, 1].
//
// Color implements the [image/color.Color] interface.
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// ToothOpacity is the opacity of all comb teeth.
const ToothOpacity = 0.4

// Key colours of the curvature gradient.
var (
	gradientLow  = Color{R: 128, G: 128, B: 128, Alpha: ToothOpacity}
	gradientMid  = Color{R: 255, G: 255, B: 0, Alpha: ToothOpacity}
	gradientHigh = Color{R: 255, G: 0, B: 0, Alpha: ToothOpacity}
)

// RGBA returns the alpha-premultiplied colour components in the range
// [0, 0xffff].
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.Alpha)
	a = uint32(math.Round(alpha * 0xffff))
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return r, g, b, a
}

// String returns the colour in CSS notation, e.g. "rgba(255, 255, 0, 0.4)".
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.Alpha)
}

// Gradient maps the curvature magnitude v to a tooth colour.
//
// The value is first normalised using r.  The result is raised to the power
// exponent (values greater than 1 push low and medium curvatures towards
// gray), and then mapped to gray, yellow and red at 0, 0.5 and 1.
func Gradient(v float64, r Range, exponent float64) Color {
	t := math.Pow(r.Normalize(v), exponent)
	if math.IsNaN(t) {
		t = 0
	}
	t = clamp01(t)

	if t < 0.5 {
		return blend(gradientLow, gradientMid, t*2)
	}
	return blend(gradientMid, gradientHigh, (t-0.5)*2)
}

// blend interpolates linearly between a and b.  Channels are truncated
// towards zero.
func blend(a, b Color, s float64) Color {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*s)
	}
	return Color{
		R:     mix(a.R, b.R),
		G:     mix(a.G, b.G),
		B:     mix(a.B, b.B),
		Alpha: a.Alpha,
	}
}
