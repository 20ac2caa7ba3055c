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
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/vec"
)

func TestPathRange(t *testing.T) {
	segs := [][]Sample{
		{{Abs: 0.3}, {Abs: 0.1}},
		{},
		{{Abs: 0.7}, {Abs: 0.2}, {Abs: 0.5}},
	}
	r, ok := PathRange(segs)
	if !ok {
		t.Fatal("no range")
	}
	diff(t, Range{Min: 0.1, Max: 0.7}, r)

	if _, ok := PathRange(nil); ok {
		t.Error("got a range without samples")
	}
	if _, ok := PathRange([][]Sample{{}, {}}); ok {
		t.Error("got a range from empty segments")
	}
}

func TestRangeNormalize(t *testing.T) {
	r := Range{Min: 0.2, Max: 0.6}
	cases := []struct {
		v, want float64
	}{
		{0.2, 0},
		{0.4, 0.5},
		{0.6, 1},
		{0, 0},
		{1, 1},
	}
	for _, c := range cases {
		diff(t, c.want, r.Normalize(c.v), cmpopts.EquateApprox(0, 1e-12))
	}

	flat := Range{Min: 0.3, Max: 0.3 + 1e-11}
	if !flat.Degenerate() {
		t.Error("range of width 1e-11 is not degenerate")
	}
	for _, v := range []float64{0, 0.3, 1} {
		if got := flat.Normalize(v); got != 0 {
			t.Errorf("Normalize(%g) = %g on a degenerate range, want 0", v, got)
		}
	}
}

func TestGradient(t *testing.T) {
	r := Range{Min: 0, Max: 1}
	cases := []struct {
		v, exp float64
		want   Color
	}{
		{0, 1, Color{128, 128, 128, ToothOpacity}},
		{0.25, 1, Color{191, 191, 64, ToothOpacity}},
		{0.5, 1, Color{255, 255, 0, ToothOpacity}},
		{0.75, 1, Color{255, 127, 0, ToothOpacity}},
		{1, 1, Color{255, 0, 0, ToothOpacity}},
		{2, 1, Color{255, 0, 0, ToothOpacity}},
		{-1, 1, Color{128, 128, 128, ToothOpacity}},
		{0.5, 2, Color{191, 191, 64, ToothOpacity}},
		{1, 5, Color{255, 0, 0, ToothOpacity}},
	}
	for _, c := range cases {
		if got := Gradient(c.v, r, c.exp); got != c.want {
			t.Errorf("Gradient(%g, exponent %g) = %v, want %v", c.v, c.exp, got, c.want)
		}
	}

	// degenerate range: always gray
	if got := Gradient(5, Range{Min: 0.4, Max: 0.4}, 3); got != gradientLow {
		t.Errorf("degenerate range gives %v, want gray", got)
	}
}

func TestColor(t *testing.T) {
	c := Color{R: 255, G: 128, B: 0, Alpha: 0.4}
	if s := c.String(); s != "rgba(255, 128, 0, 0.4)" {
		t.Errorf("got %q", s)
	}

	var _ color.Color = c
	r, g, b, a := c.RGBA()
	if a != 26214 {
		t.Errorf("alpha = %d, want 26214", a)
	}
	if r != a || b != 0 || g >= r {
		t.Errorf("got premultiplied (%d, %d, %d, %d)", r, g, b, a)
	}

	opaque := Color{R: 10, G: 20, B: 30, Alpha: 1}
	r, g, b, a = opaque.RGBA()
	diff(t, [4]uint32{10 * 0x101, 20 * 0x101, 30 * 0x101, 0xffff}, [4]uint32{r, g, b, a})
}

func TestBuildTooth(t *testing.T) {
	a := Sample{
		Point:  pt(0, 0),
		Normal: pt(0, 1),
		Signed: 0.01,
		Abs:    0.01,
	}
	b := Sample{
		Point:  pt(10, 0),
		Normal: pt(0, 1),
		Signed: -0.02,
		Abs:    0.02,
	}
	r := Range{Min: 0.01, Max: 0.03}
	tooth, ok := BuildTooth(a, b, r, 1000, 1)
	if !ok {
		t.Fatal("tooth was dropped")
	}

	want := [4]vec.Vec2{pt(0, 0), pt(10, 0), pt(10, -20), pt(0, 10)}
	diff(t, want, tooth.Quad, cmpopts.EquateApprox(0, 1e-12))
	diff(t, [2]float64{0, 0.5}, tooth.Levels, cmpopts.EquateApprox(0, 1e-12))

	// the mean curvature 0.015 normalises to 0.25
	if want := (Color{191, 191, 64, ToothOpacity}); tooth.Color != want {
		t.Errorf("got colour %v, want %v", tooth.Color, want)
	}
}

func TestBuildToothTooLong(t *testing.T) {
	a := Sample{Point: pt(0, 0), Normal: pt(0, 1), Signed: 0.5, Abs: 0.5}
	b := Sample{Point: pt(1, 0), Normal: pt(0, 1), Signed: 0.1, Abs: 0.1}
	r := Range{Min: 0.1, Max: 0.5}

	if _, ok := BuildTooth(a, b, r, 20000, 1); !ok {
		t.Error("tooth of length exactly 10000 was dropped")
	}
	if _, ok := BuildTooth(a, b, r, 20001, 1); ok {
		t.Error("tooth longer than 10000 was kept")
	}
	if _, ok := BuildTooth(b, a, r, 20001, 1); ok {
		t.Error("tooth longer than 10000 at the second sample was kept")
	}

	nan := Sample{Point: pt(0, 0), Normal: pt(0, 1), Signed: math.NaN(), Abs: math.NaN()}
	if tooth, ok := BuildTooth(nan, b, r, 1000, 1); !ok || tooth.Quad[3] != tooth.Quad[0] {
		t.Errorf("NaN curvature gives tooth %v (ok=%t), want zero length", tooth.Quad, ok)
	}
}

func TestParams(t *testing.T) {
	cases := []struct {
		in, want Params
	}{
		{Params{50, 1}, Params{50, 1}},
		{Params{-5, 0}, Params{0, 1}},
		{Params{250, 9}, Params{100, 5}},
		{Params{math.NaN(), math.NaN()}, DefaultParams},
		{Params{12.5, 2.5}, Params{12.5, 2.5}},
	}
	for _, c := range cases {
		if got := c.in.Clamp(); got != c.want {
			t.Errorf("%v.Clamp() = %v, want %v", c.in, got, c.want)
		}
	}

	for _, c := range []struct{ scale, want float64 }{
		{0, 2000},
		{50, 14500},
		{100, 27000},
	} {
		if got := (Params{Scale: c.scale}).ToothScale(); got != c.want {
			t.Errorf("scale %g: got %g, want %g", c.scale, got, c.want)
		}
	}

	var p ParamProvider = StaticParams{Scale: 10, Exponent: 2}
	diff(t, Params{Scale: 10, Exponent: 2}, p.Params())
}
