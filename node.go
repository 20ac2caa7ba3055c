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
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// NodeKind identifies the role of a node in a contour.
type NodeKind uint8

// These are the node kinds used in glyph outlines.
const (
	Corner       NodeKind = iota + 1 // on-curve corner ("c")
	Smooth                           // on-curve smooth ("cs")
	LineCorner                       // line end, corner ("l")
	LineSmooth                       // line end, smooth ("ls")
	OffCurve                         // cubic control point ("o")
	QCurve                           // quadratic on-curve corner ("q")
	QCurveSmooth                     // quadratic on-curve smooth ("qs")
)

// ErrUnknownNodeKind is returned by [ParseNodeKind] for unrecognised names.
var ErrUnknownNodeKind = errors.New("unknown node kind")

var kindNames = map[NodeKind]string{
	Corner:       "c",
	Smooth:       "cs",
	LineCorner:   "l",
	LineSmooth:   "ls",
	OffCurve:     "o",
	QCurve:       "q",
	QCurveSmooth: "qs",
}

// ParseNodeKind converts the short node type names used in layer data
// ("c", "cs", "l", "ls", "o", "q", "qs") into a NodeKind.
func ParseNodeKind(s string) (NodeKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownNodeKind, s)
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", k)
}

// IsOnCurve reports whether nodes of this kind can start or end a cubic
// segment.
func (k NodeKind) IsOnCurve() bool {
	switch k {
	case Corner, Smooth, LineCorner, LineSmooth:
		return true
	default:
		return false
	}
}

// Node is a point of a contour.
type Node struct {
	Kind NodeKind
	X, Y float64
}

// Pt returns the location of the node.
func (n Node) Pt() vec.Vec2 {
	return vec.Vec2{X: n.X, Y: n.Y}
}

// Valid reports whether the node has a known kind and finite coordinates.
func (n Node) Valid() bool {
	if _, ok := kindNames[n.Kind]; !ok {
		return false
	}
	return !math.IsNaN(n.X) && !math.IsInf(n.X, 0) &&
		!math.IsNaN(n.Y) && !math.IsInf(n.Y, 0)
}

// Contour is one outline component of a glyph.
//
// For closed contours the node list is circular: the node after the last
// one is the first one.
type Contour struct {
	Nodes  []Node
	Closed bool
}

// Path converts the contour into path data.  Runs of off-curve nodes between
// two on-curve nodes become a cubic (two control points), a quadratic (one
// control point) or a straight line (no control points, or more than two).
// Nodes which are not valid are left out.  A contour without on-curve nodes
// gives an empty path.
func (c Contour) Path() *path.Data {
	p := &path.Data{}

	var nodes []Node
	for _, n := range c.Nodes {
		if n.Valid() {
			nodes = append(nodes, n)
		}
	}

	start := -1
	for i, n := range nodes {
		if n.Kind != OffCurve {
			start = i
			break
		}
	}
	if start < 0 {
		return p
	}

	p = p.MoveTo(nodes[start].Pt())
	var ctrl []vec.Vec2
	last := len(nodes)
	if !c.Closed {
		last = len(nodes) - start - 1
	}
	for k := 1; k <= last; k++ {
		n := nodes[(start+k)%len(nodes)]
		if n.Kind == OffCurve {
			ctrl = append(ctrl, n.Pt())
			continue
		}
		switch len(ctrl) {
		case 1:
			p = p.QuadTo(ctrl[0], n.Pt())
		case 2:
			p = p.CubeTo(ctrl[0], ctrl[1], n.Pt())
		default:
			p = p.LineTo(n.Pt())
		}
		ctrl = ctrl[:0]
	}
	if c.Closed {
		p = p.Close()
	}
	return p
}
