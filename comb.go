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

	"seehuhn.de/go/geom/vec"
)

// Surface is a drawing target for combs.  Coordinates are in the same
// space as the outline nodes.
//
// The methods follow the usual path construction model: BeginPath starts
// a new empty path, MoveTo/LineTo/ClosePath add to it, and Fill paints the
// interior of the path with the given colour using the nonzero winding
// rule.
type Surface interface {
	Save()
	Restore()
	BeginPath()
	MoveTo(p vec.Vec2)
	LineTo(p vec.Vec2)
	ClosePath()
	Fill(c Color)
}

// Comb is the curvature comb of one contour.
type Comb struct {
	// Range is the curvature range of the contour, used to normalise
	// the tooth colours.
	Range Range

	// Segments is the number of cubic segments which contributed samples.
	Segments int

	// Teeth lists the teeth in drawing order.
	Teeth []Tooth

	// Dropped counts teeth which were left out because they were too long.
	Dropped int
}

// Build computes the comb of a single contour.  The curvature range is
// taken from this contour alone.
//
// The second return value is false if the contour has no cubic segments
// with usable samples.
func Build(c Contour, p Params) (*Comb, bool) {
	var sampled [][]Sample
	for _, seg := range Segments(c) {
		samples, ok := SampleSegment(seg, SamplesPerCurve)
		if !ok {
			continue
		}
		sampled = append(sampled, samples)
	}

	r, ok := PathRange(sampled)
	if !ok {
		return nil, false
	}

	p = p.Clamp()
	scale := p.ToothScale()

	res := &Comb{
		Range:    r,
		Segments: len(sampled),
	}
	for _, samples := range sampled {
		for i := 1; i < len(samples); i++ {
			tooth, ok := BuildTooth(samples[i-1], samples[i], r, scale, p.Exponent)
			if !ok {
				res.Dropped++
				continue
			}
			res.Teeth = append(res.Teeth, tooth)
		}
	}
	return res, true
}

// Stats summarises the work done by one call to [Renderer.Draw].
type Stats struct {
	Contours int // contours with a comb
	Segments int // cubic segments with usable samples
	Teeth    int // teeth drawn
	Dropped  int // teeth left out because they were too long
}

// Renderer draws the curvature combs of glyphs.
//
// A Renderer keeps no state between calls.  It is safe to use one Renderer
// from several goroutines at once, provided that each call uses its own
// Surface.
type Renderer struct {
	// Config supplies the comb settings.  If Config is nil,
	// [DefaultParams] are used.
	Config ParamProvider

	// Log receives diagnostic messages.  If Log is nil, messages are
	// discarded.
	Log Logger
}

// Draw draws the combs of all contours onto s.  Each contour has its own
// colour scale.  Teeth are drawn contour by contour, segment by segment,
// in the order of the nodes.
func (r *Renderer) Draw(s Surface, contours []Contour) Stats {
	params := DefaultParams
	if r.Config != nil {
		params = r.Config.Params()
	}
	params = params.Clamp()

	log := r.Log
	if log == nil {
		log = nopLogger{}
	}

	var stats Stats
	s.Save()
	for i, c := range contours {
		comb, ok := Build(c, params)
		if !ok {
			log.Log(fmt.Sprintf("contour %d: no cubic segments", i))
			continue
		}
		log.Log(fmt.Sprintf("contour %d: curvature range %g to %g",
			i, comb.Range.Min, comb.Range.Max))
		if comb.Dropped > 0 {
			log.Log(fmt.Sprintf("contour %d: dropped %d oversized teeth",
				i, comb.Dropped))
		}

		for _, tooth := range comb.Teeth {
			s.BeginPath()
			s.MoveTo(tooth.Quad[0])
			s.LineTo(tooth.Quad[1])
			s.LineTo(tooth.Quad[2])
			s.LineTo(tooth.Quad[3])
			s.ClosePath()
			s.Fill(tooth.Color)
		}

		stats.Contours++
		stats.Segments += comb.Segments
		stats.Teeth += len(comb.Teeth)
		stats.Dropped += comb.Dropped
	}
	s.Restore()

	log.Log(fmt.Sprintf("drew %d teeth on %d cubic segments", stats.Teeth, stats.Segments))
	return stats
}
