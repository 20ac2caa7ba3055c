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

// Segments returns the cubic Bézier segments of a contour, in the order in
// which they are traversed.
//
// A segment is a run of four nodes: on-curve, off-curve, off-curve,
// on-curve.  Every node is considered as a start node at most once, and the
// nodes of a matched run (apart from the final on-curve node) are not
// considered again.  For closed contours a run may wrap around the end of
// the node list.  Lines, quadratic curves and runs containing invalid nodes
// do not produce segments.
func Segments(c Contour) []Segment {
	nodes := c.Nodes
	n := len(nodes)
	if n < 2 {
		return nil
	}

	at := func(i int) (Node, bool) {
		if i >= n {
			if !c.Closed {
				return Node{}, false
			}
			i %= n
		}
		return nodes[i], nodes[i].Valid()
	}

	var segs []Segment
	i := 0
	for i < n {
		if seg, ok := cubicAt(at, i); ok {
			segs = append(segs, seg)
			i += 3
			continue
		}
		i++
	}
	return segs
}

// cubicAt checks whether the nodes i, ..., i+3 form a cubic segment.
func cubicAt(at func(int) (Node, bool), i int) (Segment, bool) {
	var run [4]Node
	for k := range run {
		node, ok := at(i + k)
		if !ok {
			return Segment{}, false
		}
		run[k] = node
	}

	if !run[0].Kind.IsOnCurve() || run[1].Kind != OffCurve ||
		run[2].Kind != OffCurve || !run[3].Kind.IsOnCurve() {
		return Segment{}, false
	}

	return Segment{
		P0: run[0].Pt(),
		P1: run[1].Pt(),
		P2: run[2].Pt(),
		P3: run[3].Pt(),
	}, true
}
