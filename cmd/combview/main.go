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

// Command combview draws the curvature combs of a glyph layer.
//
// Usage:
//
//	combview [flags] layer.json
//
// The layer is read from the named file, or from standard input if the
// name is "-".  The output is a PNG or PDF file, depending on the
// configured format.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/comb"
	"seehuhn.de/go/comb/config"
	"seehuhn.de/go/comb/layer"
	"seehuhn.de/go/comb/pdfcanvas"
	"seehuhn.de/go/comb/raster"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "combview:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	flags := flag.NewFlagSet("combview", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configFile = flags.String("config", "", "TOML configuration file")
		output     = flags.String("o", "", "output file (default: comb.png or comb.pdf)")
		scale      = flags.Float64("scale", comb.DefaultParams.Scale, "tooth length, 0 to 100")
		exponent   = flags.Float64("exponent", comb.DefaultParams.Exponent, "colour contrast, 1 to 5")
		format     = flags.String("format", "", "output format, png or pdf")
		verbose    = flags.Bool("v", false, "log diagnostic messages")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("expected one layer file, got %d arguments", flags.NArg())
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			return err
		}
	}

	// flags given on the command line override the configuration file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.Comb.Scale = *scale
		case "exponent":
			cfg.Comb.Exponent = *exponent
		case "format":
			cfg.Render.Format = *format
		}
	})
	if err := cfg.Check(); err != nil {
		return err
	}

	l, err := readLayer(flags.Arg(0), stdin)
	if err != nil {
		return err
	}
	if l.Skipped > 0 || l.BadNodes > 0 {
		logger.Warn("layer is incomplete", "skipped_shapes", l.Skipped, "bad_nodes", l.BadNodes)
	}

	box, ok := l.BBox()
	if !ok {
		return fmt.Errorf("%s: layer has no outline", flags.Arg(0))
	}
	box = padBox(box, cfg)

	r := &comb.Renderer{
		Config: cfg,
		Log:    comb.NewSlogLogger(logger),
	}

	fname := *output
	if fname == "" {
		fname = "comb." + cfg.Render.Format
	}

	var stats comb.Stats
	switch cfg.Render.Format {
	case "pdf":
		opt := pdfcanvas.Options{
			Width:   float64(cfg.Render.Width),
			Height:  float64(cfg.Render.Height),
			Margin:  cfg.Render.Margin,
			Outline: cfg.Render.Outline,
		}
		stats, err = pdfcanvas.WriteFile(fname, l.Contours, box, opt, r)
	default:
		stats, err = writePNG(fname, l, box, cfg, r)
	}
	if err != nil {
		return err
	}

	logger.Info("comb written",
		"file", fname,
		"contours", stats.Contours,
		"segments", stats.Segments,
		"teeth", stats.Teeth,
		"dropped", stats.Dropped)
	return nil
}

func readLayer(fname string, stdin io.Reader) (*layer.Layer, error) {
	if fname == "-" {
		return layer.Decode(stdin)
	}

	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	l, err := layer.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return l, nil
}

// padBox enlarges the outline box so that teeth of typical length fit
// into the image.  The amount grows with the scale setting.
func padBox(box rect.Rect, cfg *config.Config) rect.Rect {
	size := math.Max(box.URx-box.LLx, box.URy-box.LLy)
	if size <= 0 {
		size = 1
	}
	pad := size * (0.1 + 0.2*cfg.Params().Scale/comb.MaxScale)
	return rect.Rect{
		LLx: box.LLx - pad,
		LLy: box.LLy - pad,
		URx: box.URx + pad,
		URy: box.URy + pad,
	}
}

func writePNG(fname string, l *layer.Layer, box rect.Rect, cfg *config.Config, r *comb.Renderer) (stats comb.Stats, err error) {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Render.Width, cfg.Render.Height))
	c := raster.NewCanvas(img)
	c.Clear(color.White)
	c.CTM = raster.FitTransform(box, cfg.Render.Width, cfg.Render.Height, cfg.Render.Margin)

	if cfg.Render.Outline >= 0 {
		g := uint8(math.Round(cfg.Render.Outline * 255))
		c.FillOutline(l.Contours, color.Gray{Y: g})
	}
	stats = r.Draw(c, l.Contours)

	f, err := os.Create(fname)
	if err != nil {
		return stats, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return stats, png.Encode(f, img)
}
