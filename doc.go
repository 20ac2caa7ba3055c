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

// Package comb computes curvature combs for outlines made of cubic Bézier
// segments.
//
// A comb is a sequence of thin quadrilaterals ("teeth") standing on the
// outline. The length of each tooth is proportional to the local curvature,
// and its colour runs from gray through yellow to red as the curvature
// approaches the largest value found on the same contour.
//
// The computation is a pure function of its input. For each contour:
//
//  1. [Segments] finds the on, off, off, on runs of the node list.
//  2. [SampleSegment] evaluates position, normal and curvature along every
//     segment.
//  3. [PathRange] finds the curvature range of the contour.
//  4. [BuildTooth] turns every pair of neighbouring samples into a [Tooth].
//
// [Build] runs these steps for one contour, and [Renderer.Draw] draws the
// combs of all contours of a glyph onto a [Surface].
//
// Curvature signs follow the usual convention for a y-up coordinate system:
// the canonical curvature is positive where the curve turns counter-clockwise.
// Samples store the negated value, so that teeth built from positive values
// extend to the left of the direction of travel, which is the convex side
// of the curve.
package comb

//go:generate go run ./testcases/export
