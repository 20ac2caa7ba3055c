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

import "math"

// Params are the user-adjustable settings of the comb.
type Params struct {
	// Scale controls the tooth length.  Valid values are in [0, 100];
	// see [Params.ToothScale].
	Scale float64

	// Exponent shapes the colour contrast.  Valid values are in [1, 5];
	// 1 maps curvature linearly to the colour gradient.
	Exponent float64
}

// Limits and defaults of the comb parameters.
const (
	MinScale     = 0
	MaxScale     = 100
	MinExponent  = 1
	MaxExponent  = 5
	DefaultScale = 50
)

// DefaultParams are the settings used when nothing else is configured.
var DefaultParams = Params{Scale: DefaultScale, Exponent: MinExponent}

// Clamp returns a copy of p with all fields moved into their valid range.
// NaN values are replaced by the defaults.
func (p Params) Clamp() Params {
	p.Scale = clampTo(p.Scale, MinScale, MaxScale, DefaultParams.Scale)
	p.Exponent = clampTo(p.Exponent, MinExponent, MaxExponent, DefaultParams.Exponent)
	return p
}

// ToothScale returns the factor which converts curvature (in 1/units) into
// tooth length (in units).
func (p Params) ToothScale() float64 {
	return 2000 + p.Scale*250
}

func clampTo(v, lo, hi, def float64) float64 {
	if math.IsNaN(v) {
		return def
	}
	return min(max(v, lo), hi)
}

// ParamProvider gives access to the current comb settings.
type ParamProvider interface {
	Params() Params
}

// StaticParams is a ParamProvider which always returns the same settings.
type StaticParams Params

// Params implements the [ParamProvider] interface.
func (p StaticParams) Params() Params {
	return Params(p)
}
