// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"
)

// Point3 is a plain 3D point record, used for storage and
// serialization of point data. Use [Point3.Vector3] to do math on it.
type Point3 struct {
	X float32 `json:"x" toml:"x" yaml:"x"`
	Y float32 `json:"y" toml:"y" yaml:"y"`
	Z float32 `json:"z" toml:"z" yaml:"z"`
}

// P3 returns a new [Point3] with the given x, y and z coordinates.
func P3(x, y, z float32) Point3 {
	return Point3{x, y, z}
}

// Point3FromVector3 returns a new [Point3] from the given [Vector3].
func Point3FromVector3(v Vector3) Point3 {
	return Point3{v.X, v.Y, v.Z}
}

// Vector3 returns the point as a [Vector3].
func (p Point3) Vector3() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}

func (p Point3) String() string {
	return fmt.Sprintf("(%v, %v, %v)", p.X, p.Y, p.Z)
}

// ParsePoint3 parses a point from exactly three comma or space separated
// numbers, as in "1,2.5,-3" or "1 2.5 -3".
func ParsePoint3(s string) (Point3, error) {
	fs := pointFields(s)
	if len(fs) != 3 {
		return Point3{}, fmt.Errorf("math32.ParsePoint3: expected 3 numbers, got %q", s)
	}
	return parsePoint3(fs)
}

// ParsePoint3Prefix is [ParsePoint3] for strings with at least three
// numbers. Any fields after the third are ignored.
func ParsePoint3Prefix(s string) (Point3, error) {
	fs := pointFields(s)
	if len(fs) < 3 {
		return Point3{}, fmt.Errorf("math32.ParsePoint3Prefix: expected x y z, got %q", s)
	}
	return parsePoint3(fs[:3])
}

func pointFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parsePoint3(fs []string) (Point3, error) {
	var v [3]float32
	for i := range v {
		f, err := ParseFloat32(fs[i])
		if err != nil {
			return Point3{}, err
		}
		v[i] = f
	}
	return Point3{v[0], v[1], v[2]}, nil
}
