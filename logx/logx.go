// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger for the geom tools,
// with colored level prefixes and a user-settable level.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] or the config of the app. It defaults
// to [slog.LevelInfo], or [slog.LevelDebug] with the debug build tag,
// or [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the following order:
//   - if debug is true, it returns [slog.LevelDebug].
//   - if verbose is true, it returns [slog.LevelInfo].
//   - if quiet is true, it returns [slog.LevelError].
//   - otherwise, it returns [slog.LevelWarn].
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// levelVar tracks UserLevel for the default logger, so that changes
// to UserLevel after SetDefaultLogger take effect.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return UserLevel
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr] at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, levelVar{}))
}

// NewLogger returns a new logger writing to the given writer at the given level,
// with colors only if the writer is a terminal, unless the options say otherwise.
func NewLogger(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *slog.Logger {
	return slog.New(NewHandler(w, level, opts...))
}
