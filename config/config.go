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

// Package config holds the settings of the comb viewer.
//
// Settings are stored in TOML files:
//
//	[comb]
//	scale = 50.0
//	exponent = 1.0
//
//	[render]
//	width = 800
//	height = 800
//	margin = 40.0
//	outline = 0.85
//	format = "png"
//
// Missing entries keep their default values.  Unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/comb"
)

// Config is the complete viewer configuration.
type Config struct {
	Comb   Comb   `toml:"comb"`
	Render Render `toml:"render"`
}

// Comb holds the comb parameters.  Values outside the slider ranges are
// clamped when they are used.
type Comb struct {
	Scale    float64 `toml:"scale"`
	Exponent float64 `toml:"exponent"`
}

// Render controls the output image.
type Render struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Margin float64 `toml:"margin"`

	// Outline is the gray level used to fill the glyph below the comb.
	// Negative values disable the outline.
	Outline float64 `toml:"outline"`

	// Format is either "png" or "pdf".
	Format string `toml:"format"`
}

// ErrInvalid is returned by [Config.Check] for settings which cannot be
// used.
var ErrInvalid = errors.New("invalid setting")

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Comb: Comb{
			Scale:    comb.DefaultParams.Scale,
			Exponent: comb.DefaultParams.Exponent,
		},
		Render: Render{
			Width:   800,
			Height:  800,
			Margin:  40,
			Outline: 0.85,
			Format:  "png",
		},
	}
}

// Load reads a configuration file.
func Load(fname string) (*Config, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	c, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return c, nil
}

// Decode reads a configuration from r, starting from the defaults.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	if err := c.Check(); err != nil {
		return nil, err
	}
	return c, nil
}

// Write stores the configuration in TOML format.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Check verifies the render settings.
func (c *Config) Check() error {
	r := &c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalid, r.Width, r.Height)
	case !(r.Margin >= 0) || 2*r.Margin >= float64(min(r.Width, r.Height)):
		return fmt.Errorf("%w: margin %g", ErrInvalid, r.Margin)
	case r.Outline > 1:
		return fmt.Errorf("%w: outline gray level %g", ErrInvalid, r.Outline)
	case r.Format != "png" && r.Format != "pdf":
		return fmt.Errorf("%w: format %q", ErrInvalid, r.Format)
	}
	return nil
}

// Params returns the clamped comb parameters.  This implements
// [comb.ParamProvider].
func (c *Config) Params() comb.Params {
	return comb.Params{Scale: c.Comb.Scale, Exponent: c.Comb.Exponent}.Clamp()
}

var _ comb.ParamProvider = (*Config)(nil)
