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

// Package raster draws curvature combs into images.
//
// [Rasteriser] turns filled paths into anti-aliased pixel coverage, and
// [Canvas] uses it to implement the [comb.Surface] interface on top of an
// [image.RGBA].
package raster

//go:generate go run ../testcases/genpdf

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
	dir    float32 // +1 if the original segment pointed down, -1 if up
}

// Rasteriser converts filled paths to pixel coverage values, ranging from 0
// (outside) to 1 (inside).  A single Rasteriser should be reused for many
// paths, since internal buffers are kept between calls.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon used to approximate it.  Must be positive.
	Flatness float64

	edges  []edge
	active []int
	cover  []float32 // signed vertical extent of edges, per pixel
	area   []float32 // cover weighted by the uncovered part of the pixel

	bboxEmpty                  bool
	bxMin, bxMax, byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with the
// identity transformation and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the default transformation and flatness, and sets a new
// clip rectangle.  Internal buffers are kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
}

// FillNonZero fills the path using the nonzero winding rule.  The emit
// callback receives the coverage of one pixel row at a time, starting at
// column xMin; the slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, nonZeroCoverage, emit)
}

// FillEvenOdd fills the path using the even-odd rule.  The emit callback is
// used as for [Rasteriser.FillNonZero].
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, evenOddCoverage, emit)
}

func (r *Rasteriser) fill(p *path.Data, rule func(float32) float32, emit func(y, xMin int, coverage []float32)) {
	if !r.buildEdges(p) {
		return
	}

	xMin := max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
	r.active = r.active[:0]
	next := 0

	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}

		// drop edges which end above this row
		keep := r.active[:0]
		for _, idx := range r.active {
			if r.edges[idx].y1 > top {
				keep = append(keep, idx)
			}
		}
		r.active = keep
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for _, idx := range r.active {
			r.accumulate(&r.edges[idx], top, bottom, xMin, xMax)
		}

		var acc float32
		for i := range r.cover {
			raw := acc + r.area[i]
			acc += r.cover[i]
			r.cover[i] = rule(raw)
		}

		lo, hi := 0, width
		for lo < hi && r.cover[lo] == 0 {
			lo++
		}
		for hi > lo && r.cover[hi-1] == 0 {
			hi--
		}
		if lo < hi {
			emit(y, xMin+lo, r.cover[lo:hi])
		}
	}
}

// buildEdges flattens the path into device space edges and records their
// bounding box.  The result is false if the path has no non-horizontal
// edges.
func (r *Rasteriser) buildEdges(p *path.Data) bool {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuad(cur, p.Coords[k], p.Coords[k+1])
			cur = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}

	// open subpaths are filled as if they were closed
	if cur != start {
		r.addEdge(cur, start)
	}
	return len(r.edges) > 0
}

// toDevice applies the CTM to a point.
func (r *Rasteriser) toDevice(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the device space length of the user space vector v.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}.Length()
}

func (r *Rasteriser) addEdge(a, b vec.Vec2) {
	p := r.toDevice(a)
	q := r.toDevice(b)
	if math.Abs(q.Y-p.Y) < horizontalEdgeThreshold {
		return
	}

	e := edge{dir: 1}
	if q.Y < p.Y {
		p, q = q, p
		e.dir = -1
	}
	e.x0, e.y0 = p.X, p.Y
	e.x1, e.y1 = q.X, q.Y
	e.dxdy = (q.X - p.X) / (q.Y - p.Y)
	r.edges = append(r.edges, e)

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(p.X, q.X), max(p.X, q.X)
		r.byMin, r.byMax = p.Y, q.Y
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, p.X, q.X)
	r.bxMax = max(r.bxMax, p.X, q.X)
	r.byMin = min(r.byMin, p.Y)
	r.byMax = max(r.byMax, q.Y)
}

// flattenQuad approximates a quadratic Bézier by line segments.
func (r *Rasteriser) flattenQuad(p0, p1, p2 vec.Vec2) {
	// the deviation from the chord is bounded by |P0 - 2P1 + P2| / 4
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)) / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// flattenCubic approximates a cubic Bézier by line segments, using Wang's
// formula for the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d := max(
		r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2)),
		r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3)),
	)
	n := 1
	if d > 0 {
		if m := math.Sqrt(3 * d / (4 * r.Flatness)); m > 1 {
			n = int(math.Ceil(m))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		q := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, q)
		prev = q
	}
}

// accumulate adds the contribution of the part of e inside the pixel row
// [top, bottom) to the cover and area buffers.  The buffers are indexed by
// x - xMin.  Contributions left of xMin are added to the first pixel, those
// right of xMax are ignored.
func (r *Rasteriser) accumulate(e *edge, top, bottom float64, xMin, xMax int) {
	y0 := max(top, e.y0)
	y1 := min(bottom, e.y1)
	if y1 <= y0 {
		return
	}

	xa := e.x0 + e.dxdy*(y0-e.y0)
	xb := e.x0 + e.dxdy*(y1-e.y0)
	left, right := min(xa, xb), max(xa, xb)
	colLeft := int(math.Floor(left))
	colRight := int(math.Floor(right))

	if colRight < xMin {
		c := e.dir * float32(y1-y0)
		r.cover[0] += c
		r.area[0] += c
		return
	}
	if colLeft >= xMax {
		return
	}

	if colLeft == colRight {
		r.addPiece(e, y0, y1, colLeft, xMin, xMax)
		return
	}

	// split the edge at the pixel column boundaries
	dydx := 1 / e.dxdy
	for col := colLeft; col <= colRight; col++ {
		ya := e.y0 + dydx*(float64(col)-e.x0)
		yb := e.y0 + dydx*(float64(col+1)-e.x0)
		lo := max(min(ya, yb), y0)
		hi := min(max(ya, yb), y1)
		if hi <= lo {
			continue
		}
		r.addPiece(e, lo, hi, col, xMin, xMax)
	}
}

// addPiece adds the contribution of the part of e between heights y0 and
// y1, which lies entirely inside pixel column col.
func (r *Rasteriser) addPiece(e *edge, y0, y1 float64, col, xMin, xMax int) {
	c := e.dir * float32(y1-y0)
	switch {
	case col < xMin:
		r.cover[0] += c
		r.area[0] += c
	case col < xMax:
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := xMid - float64(col)
		r.cover[col-xMin] += c
		r.area[col-xMin] += c * float32(1-frac)
	}
}

// nonZeroCoverage folds an accumulated winding value into [0, 1] for the
// nonzero rule.
func nonZeroCoverage(raw float32) float32 {
	if raw < 0 {
		raw = -raw
	}
	return min(raw, 1)
}

// evenOddCoverage folds an accumulated winding value into [0, 1] for the
// even-odd rule.
func evenOddCoverage(raw float32) float32 {
	if raw < 0 {
		raw = -raw
	}
	m := raw - 2*float32(int(raw/2))
	d := 1 - m
	if d < 0 {
		d = -d
	}
	return 1 - d
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10
)
