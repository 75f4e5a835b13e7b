// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that prints each record on one line
// as a colored level, the message, and then key=value attributes.
type Handler struct {
	out   *termenv.Output
	level slog.Leveler
	mu    *sync.Mutex

	// preformatted attributes from WithAttrs
	attrs string

	// dotted group prefix from WithGroup
	group string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are used only when the writer is a terminal that supports them.
func NewHandler(w io.Writer, level slog.Leveler, opts ...termenv.OutputOption) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{
		out:   termenv.NewOutput(w, opts...),
		level: level,
		mu:    &sync.Mutex{},
	}
}

// Enabled returns whether the given level is at or above the handler level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelString(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}
	nh.attrs = b.String()
	return &nh
}

// WithGroup returns a new handler with the given group name
// prefixed to subsequent attribute keys.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.group = h.group + name + "."
	return &nh
}

func (h *Handler) levelString(level slog.Level) string {
	s := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := group
		if a.Key != "" {
			sub += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(b, sub, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s%s=%v", group, a.Key, a.Value)
}
