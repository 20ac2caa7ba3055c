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
	"context"
	"log/slog"
)

// Logger receives diagnostic messages from a [Renderer].
type Logger interface {
	Log(msg string)
}

// LoggerFunc adapts an ordinary function to the [Logger] interface.
type LoggerFunc func(msg string)

// Log implements the [Logger] interface.
func (f LoggerFunc) Log(msg string) {
	f(msg)
}

// NewSlogLogger returns a Logger which writes messages to l at debug level.
// If l is nil, messages are discarded.
func NewSlogLogger(l *slog.Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return slogLogger{l: l}
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Log(msg string) {
	s.l.Log(context.Background(), slog.LevelDebug, msg)
}

type nopLogger struct{}

func (nopLogger) Log(string) {}
