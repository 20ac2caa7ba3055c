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

// Range is the interval of curvature magnitudes found on one contour.
type Range struct {
	Min, Max float64
}

// PathRange returns the range of [Sample.Abs] over all samples of one
// contour.  The argument holds one sample sequence per segment.
//
// The second return value is false if there are no samples at all.
func PathRange(segments [][]Sample) (Range, bool) {
	var r Range
	found := false
	for _, samples := range segments {
		for _, s := range samples {
			if !found {
				r = Range{Min: s.Abs, Max: s.Abs}
				found = true
				continue
			}
			r.Min = min(r.Min, s.Abs)
			r.Max = max(r.Max, s.Abs)
		}
	}
	return r, found
}

// Degenerate reports whether the range is too small to distinguish
// curvature values.
func (r Range) Degenerate() bool {
	return r.Max-r.Min < degenerateRange
}

// Normalize maps v to [0, 1], with Min going to 0 and Max going to 1.
// Values outside the range are clamped.  For a degenerate range the result
// is always 0.
func (r Range) Normalize(v float64) float64 {
	if r.Degenerate() {
		return 0
	}
	return clamp01((v - r.Min) / (r.Max - r.Min))
}

// degenerateRange is the smallest width of a [Range] which is used for
// normalisation.
const degenerateRange = 1e-10
