// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages. It is on by default,
// and is further gated by whether the output supports color.
var UseColor = true

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a new text [slog.Handler] writing to w at the given
// minimum level. Level names are colored when [UseColor] is set and w
// is a terminal that supports color.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	color := UseColor && out.Profile != termenv.Ascii
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !color || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lv))
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level styled for the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		return s.Foreground(out.Color("1")).Bold().String()
	case lv >= slog.LevelWarn:
		return s.Foreground(out.Color("3")).String()
	case lv >= slog.LevelInfo:
		return s.Foreground(out.Color("4")).String()
	default:
		return s.Faint().String()
	}
}
