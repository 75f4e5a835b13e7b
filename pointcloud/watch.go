// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"cogentcore.org/geom/math32"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default time that a [Watcher] waits after
// the last change to a file before reading it again.
const DefaultDebounce = 100 * time.Millisecond

// Watcher refits the bounding sphere of a point cloud file
// each time the file changes.
type Watcher struct {

	// path of the point cloud file
	Path string

	// explicit sphere center, overriding any center in the file
	Center *math32.Point3

	// time to wait after the last change before reading the file
	Debounce time.Duration

	// OnUpdate is called with the new sphere and document after each read
	OnUpdate func(s math32.Sphere, doc *Document)
}

// NewWatcher returns a new [Watcher] for the given file that calls
// the given function after each read.
func NewWatcher(path string, onUpdate func(s math32.Sphere, doc *Document)) *Watcher {
	return &Watcher{Path: path, Debounce: DefaultDebounce, OnUpdate: onUpdate}
}

// Watch reads the file, then reads it again each time it is written
// or created, until the context is done. Read
// errors are logged and watching continues. It only returns an error
// if the file cannot be watched.
func (w *Watcher) Watch(ctx context.Context) error {
	path, err := filepath.Abs(w.Path)
	if err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	// watch the directory, as editors often replace the file
	if err := fw.Add(filepath.Dir(path)); err != nil {
		return err
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w.update(path)
	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("watching point cloud", "path", path, "err", err)
		case <-timer.C:
			w.update(path)
		}
	}
}

// Watch watches the point cloud file at the given path with a [Watcher]
// until the context is done. See [Watcher.Watch].
func Watch(ctx context.Context, path string, center *math32.Point3, onUpdate func(s math32.Sphere, doc *Document)) error {
	w := NewWatcher(path, onUpdate)
	w.Center = center
	return w.Watch(ctx)
}

// update reads the file and calls OnUpdate.
func (w *Watcher) update(path string) {
	doc, err := Open(path)
	if err != nil {
		slog.Error("reading point cloud", "err", err)
		return
	}
	if w.Center != nil {
		doc.Center = w.Center
	}
	s := doc.BoundingSphere()
	slog.Info("fit bounding sphere", "path", path, "points", len(doc.Points), "center", s.Center, "radius", s.Radius)
	if w.OnUpdate != nil {
		w.OnUpdate(s, doc)
	}
}
