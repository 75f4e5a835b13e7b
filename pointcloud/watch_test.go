// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/geom/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cloud.xyz")
	require.NoError(t, os.WriteFile(fn, []byte("0 0 0\n2 0 0\n"), 0666))

	spheres := make(chan math32.Sphere, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	w := NewWatcher(fn, func(s math32.Sphere, doc *Document) {
		spheres <- s
	})
	w.Debounce = 50 * time.Millisecond
	go func() {
		done <- w.Watch(ctx)
	}()

	next := func() math32.Sphere {
		select {
		case s := <-spheres:
			return s
		case <-time.After(5 * time.Second):
			require.FailNow(t, "timed out waiting for update")
		}
		return math32.Sphere{}
	}

	s := next()
	assert.Equal(t, math32.Vec3(1, 0, 0), s.Center)
	assert.Equal(t, float32(1), s.Radius)

	// wait for the watcher to be ready for changes
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(fn, []byte("0 0 0\n4 0 0\n"), 0666))
	s = next()
	assert.Equal(t, math32.Vec3(2, 0, 0), s.Center)
	assert.Equal(t, float32(2), s.Radius)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatchCenter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cloud.toml")
	require.NoError(t, Save(fn, &Document{Points: Cloud{math32.P3(3, 4, 0)}}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	got := make(chan math32.Sphere, 1)
	go Watch(ctx, fn, &math32.Point3{}, func(s math32.Sphere, doc *Document) {
		got <- s
		cancel()
	})
	select {
	case s := <-got:
		assert.Equal(t, math32.Vector3{}, s.Center)
		assert.Equal(t, float32(5), s.Radius)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for update")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "cloud.xyz"), nil, nil)
	assert.Error(t, err)
}
