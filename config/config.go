// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// structs for the bsphere tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/geom/base/fsx"
	"cogentcore.org/geom/pointcloud"
	"github.com/pelletier/go-toml/v2"
)

// AppName is the name of the tool, used for its config directory.
const AppName = "bsphere"

// Config is the main config struct
// that contains all of the configuration
// options for the bsphere tool
type Config struct {

	// [def: text] the output format for reports: text, toml, yaml, or json
	Format string `def:"text" toml:"format" desc:"the output format for reports: text, toml, yaml, or json"`

	// the explicit bounding sphere center as x,y,z; if empty, the file center or the center of the bounds is used
	Center string `toml:"center" desc:"the explicit bounding sphere center as x,y,z"`

	// print debug messages
	Debug bool `toml:"debug" desc:"print debug messages"`

	// print informational messages
	Verbose bool `toml:"verbose" desc:"print informational messages"`

	// only print errors
	Quiet bool `toml:"quiet" desc:"only print errors"`

	// the configuration options for the gen command
	Gen Gen `toml:"gen" desc:"the configuration options for the gen command"`

	// the configuration options for the watch command
	Watch Watch `toml:"watch" desc:"the configuration options for the watch command"`
}

// Gen has the configuration options for generating random point clouds.
type Gen struct {

	// [def: uniform] the distribution of the points: uniform, gaussian, or shell
	Dist pointcloud.Distributions `def:"uniform" toml:"dist" desc:"the distribution of the points: uniform, gaussian, or shell"`

	// [def: 1000] the number of points
	N int `def:"1000" toml:"n" desc:"the number of points"`

	// [def: 1] the half-width, standard deviation, or radius of the distribution
	Size float32 `def:"1" toml:"size" desc:"the half-width, standard deviation, or radius of the distribution"`

	// [def: 0,0,0] the center of the distribution as x,y,z
	Center string `def:"0,0,0" toml:"center" desc:"the center of the distribution as x,y,z"`

	// [def: 1] the random seed; 0 uses the time
	Seed uint64 `def:"1" toml:"seed" desc:"the random seed; 0 uses the time"`
}

// Watch has the configuration options for watching point cloud files.
type Watch struct {

	// [def: 100] the milliseconds to wait after the last change before refitting
	DebounceMs int `def:"100" toml:"debounce_ms" desc:"the milliseconds to wait after the last change before refitting"`
}

// Debounce returns DebounceMs as a duration.
func (w *Watch) Debounce() time.Duration {
	return time.Duration(w.DebounceMs) * time.Millisecond
}

// DefaultFile returns the path of the default config file.
func DefaultFile() string {
	return filepath.Join(fsx.ConfigDir(AppName), "config.toml")
}

// New returns a new [Config] with the default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg) // errors are logged
	return cfg
}

// Open sets the given config from the given TOML file.
// A leading ~ in the path is expanded to the home directory.
func Open(cfg *Config, file string) error {
	path, err := fsx.ExpandHome(file)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	return nil
}

// Load returns a new [Config] with the default values, updated from
// the given TOML file. If file is empty, [DefaultFile] is used if it exists.
func Load(file string) (*Config, error) {
	cfg := New()
	if file == "" {
		file = DefaultFile()
		ok, err := fsx.FileExists(file)
		if err != nil || !ok {
			return cfg, err
		}
	}
	return cfg, Open(cfg, file)
}

// Save writes the given config to the given TOML file.
func Save(cfg *Config, file string) error {
	path, err := fsx.ExpandHome(file)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
