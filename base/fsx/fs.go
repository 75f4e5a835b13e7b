// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/geom/base/errors"
	"github.com/mitchellh/go-homedir"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExpandHome expands a leading ~ in the given path to the
// user's home directory. Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	return homedir.Expand(path)
}

// ExtLower returns the lowercase file extension of the given path,
// including the leading dot, or "" if there is none.
func ExtLower(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// ConfigDir returns the directory for the configuration files
// of the given app under the user's home directory.
func ConfigDir(app string) string {
	home := errors.Log1(homedir.Dir())
	return filepath.Join(home, ".config", app)
}
