// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/geom/pointcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "", cfg.Center)
	assert.False(t, cfg.Debug)
	assert.Equal(t, pointcloud.Uniform, cfg.Gen.Dist)
	assert.Equal(t, 1000, cfg.Gen.N)
	assert.Equal(t, float32(1), cfg.Gen.Size)
	assert.Equal(t, "0,0,0", cfg.Gen.Center)
	assert.Equal(t, uint64(1), cfg.Gen.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Watch.Debounce())
}

func TestSetFromDefaultsErrors(t *testing.T) {
	type bad struct {
		N int `def:"many"`
	}
	assert.Error(t, SetFromDefaults(&bad{}))
	assert.Error(t, SetFromDefaults(3))

	type unsupported struct {
		M map[string]int `def:"x"`
	}
	assert.Error(t, SetFromDefaults(&unsupported{}))
}

func TestOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	src := `
format = "yaml"
center = "1,2,3"

[gen]
dist = "shell"
n = 50
size = 2.5

[watch]
debounce_ms = 250
`
	require.NoError(t, os.WriteFile(fn, []byte(src), 0666))
	cfg, err := Load(fn)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "1,2,3", cfg.Center)
	assert.Equal(t, pointcloud.Shell, cfg.Gen.Dist)
	assert.Equal(t, 50, cfg.Gen.N)
	assert.Equal(t, float32(2.5), cfg.Gen.Size)
	assert.Equal(t, uint64(1), cfg.Gen.Seed, "unset values keep their defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce())

	require.NoError(t, os.WriteFile(fn, []byte(`[gen]
dist = "cube"
`), 0666))
	_, err = Load(fn)
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSave(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	cfg := New()
	cfg.Gen.Dist = pointcloud.Gaussian
	cfg.Quiet = true
	require.NoError(t, Save(cfg, fn))

	got := &Config{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)
}
