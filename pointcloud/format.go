// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"cogentcore.org/geom/base/enums"
	"cogentcore.org/geom/base/fsx"
)

// Format is a point cloud file format.
type Format int32

const (
	// Unknown is an unrecognized format.
	Unknown Format = iota

	// TOML is a TOML [Document] with [[points]] tables.
	TOML

	// YAML is a YAML [Document].
	YAML

	// JSON is a JSON [Document], validated against [Schema].
	JSON

	// XYZ is plain text with one whitespace or comma separated
	// "x y z" point per line, and # comments.
	XYZ

	// GLTF is a glTF 2.0 model (.gltf or .glb), read only.
	// The points are the vertex positions of all mesh primitives.
	GLTF
)

var formatMap = map[Format]string{Unknown: "unknown", TOML: "toml", YAML: "yaml", JSON: "json", XYZ: "xyz", GLTF: "gltf"}

// formatValues has the names that [Format.SetString] accepts:
// the extensions of each format, not including "unknown".
var formatValues = enums.ValueMap(map[Format]string{TOML: "toml", YAML: "yaml", JSON: "json", XYZ: "xyz", GLTF: "gltf"},
	map[string]Format{"yml": YAML, "txt": XYZ, "glb": GLTF})

func (f Format) String() string { return enums.String(f, formatMap) }

// SetString sets the format from its name, as returned by [Format.String],
// or from a file extension.
func (f *Format) SetString(s string) error {
	return enums.SetStringLower(f, s, formatValues, "Format")
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error { return f.SetString(string(text)) }

// FormatFromPath returns the format for the extension of the given path,
// or [Unknown].
func FormatFromPath(path string) Format {
	var f Format
	ext := fsx.ExtLower(path)
	if ext == "" {
		return Unknown
	}
	if f.SetString(ext[1:]) != nil {
		return Unknown
	}
	return f
}
