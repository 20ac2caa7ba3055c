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

// Package layer reads glyph layers in the JSON format used by the font
// editor, and converts their path shapes into [comb.Contour] values.
//
// A layer looks like this:
//
//	{
//	  "width": 600,
//	  "shapes": [
//	    {"Path": {"closed": true, "nodes": [{"x": 0, "y": 0, "type": "c"}, ...]}},
//	    {"Component": {"reference": "acute"}}
//	  ]
//	}
//
// Only "Path" shapes are used.  Components, anchors and other shape types
// are counted and skipped.
package layer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/comb"
)

// Layer is a decoded glyph layer.
type Layer struct {
	Width    float64
	Contours []comb.Contour

	// Skipped is the number of shapes which are not paths.
	Skipped int

	// BadNodes is the number of nodes with a missing or unknown type or
	// with missing coordinates.  These nodes are kept in the contour as
	// invalid nodes, so that they interrupt curve detection at their
	// position.
	BadNodes int
}

// ErrNotLayer is returned when the input is valid JSON, but not a layer
// object.
var ErrNotLayer = errors.New("not a glyph layer")

type jsonLayer struct {
	Width  float64     `json:"width"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Path *jsonPath `json:"Path,omitempty"`

	// Some producers put the nodes directly into the shape.
	Nodes  []jsonNode `json:"nodes,omitempty"`
	Closed *bool      `json:"closed,omitempty"`
}

type jsonPath struct {
	Nodes  []jsonNode `json:"nodes"`
	Closed *bool      `json:"closed,omitempty"`
}

type jsonNode struct {
	X    *float64 `json:"x,omitempty"`
	Y    *float64 `json:"y,omitempty"`
	Type string   `json:"type,omitempty"`
}

// Decode reads a single layer from r.
func Decode(r io.Reader) (*Layer, error) {
	dec := json.NewDecoder(r)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a layer from its JSON representation.
func Parse(data []byte) (*Layer, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}
	if _, ok := probe["shapes"]; !ok {
		return nil, fmt.Errorf("layer: %w: no \"shapes\" field", ErrNotLayer)
	}

	var jl jsonLayer
	if err := json.Unmarshal(data, &jl); err != nil {
		return nil, fmt.Errorf("layer: %w", err)
	}

	l := &Layer{Width: jl.Width}
	for _, s := range jl.Shapes {
		nodes, closed := s.Nodes, s.Closed
		if s.Path != nil {
			nodes, closed = s.Path.Nodes, s.Path.Closed
		}
		if s.Path == nil && s.Nodes == nil {
			l.Skipped++
			continue
		}

		c := comb.Contour{
			Nodes:  make([]comb.Node, len(nodes)),
			Closed: closed == nil || *closed,
		}
		for i, n := range nodes {
			node, ok := convertNode(n)
			if !ok {
				l.BadNodes++
			}
			c.Nodes[i] = node
		}
		l.Contours = append(l.Contours, c)
	}
	return l, nil
}

// convertNode converts a JSON node.  Nodes which cannot be converted are
// returned with kind 0 and NaN coordinates where data is missing.
func convertNode(n jsonNode) (comb.Node, bool) {
	node := comb.Node{X: math.NaN(), Y: math.NaN()}
	ok := true
	if n.X != nil {
		node.X = *n.X
	} else {
		ok = false
	}
	if n.Y != nil {
		node.Y = *n.Y
	} else {
		ok = false
	}

	kind, err := comb.ParseNodeKind(n.Type)
	if err != nil {
		ok = false
	}
	node.Kind = kind
	return node, ok
}

// Encode writes l in the layer JSON format.  Unknown node kinds are
// written without a type, and non-finite coordinates are left out.
func Encode(w io.Writer, l *Layer) error {
	jl := jsonLayer{Width: l.Width, Shapes: make([]jsonShape, 0, len(l.Contours))}
	for _, c := range l.Contours {
		closed := c.Closed
		p := &jsonPath{Nodes: make([]jsonNode, len(c.Nodes)), Closed: &closed}
		for i, n := range c.Nodes {
			p.Nodes[i] = jsonNode{X: finite(n.X), Y: finite(n.Y)}
			if _, err := comb.ParseNodeKind(n.Kind.String()); err == nil {
				p.Nodes[i].Type = n.Kind.String()
			}
		}
		jl.Shapes = append(jl.Shapes, jsonShape{Path: p})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jl)
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

// BBox returns the bounding box of all valid nodes, including off-curve
// points.  The second return value is false if there are no valid nodes.
func (l *Layer) BBox() (rect.Rect, bool) {
	var box rect.Rect
	found := false
	for _, c := range l.Contours {
		for _, n := range c.Nodes {
			if !n.Valid() {
				continue
			}
			if !found {
				box = rect.Rect{LLx: n.X, LLy: n.Y, URx: n.X, URy: n.Y}
				found = true
				continue
			}
			box.LLx = min(box.LLx, n.X)
			box.LLy = min(box.LLy, n.Y)
			box.URx = max(box.URx, n.X)
			box.URy = max(box.URy, n.Y)
		}
	}
	return box, found
}
