// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/pointcloud"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Bounds is an axis-aligned box in a [Report].
type Bounds struct {
	Min math32.Point3 `json:"min" toml:"min" yaml:"min"`
	Max math32.Point3 `json:"max" toml:"max" yaml:"max"`
}

// Report describes the bounding sphere of a point cloud.
type Report struct {
	File   string        `json:"file,omitempty" toml:"file,omitempty" yaml:"file,omitempty"`
	Points int           `json:"points" toml:"points" yaml:"points"`
	Center math32.Point3 `json:"center" toml:"center" yaml:"center"`
	Radius float32       `json:"radius" toml:"radius" yaml:"radius"`
	Empty  bool          `json:"empty" toml:"empty" yaml:"empty"`
	Box    Bounds        `json:"box" toml:"box" yaml:"box"`

	// Query is only set by the query command.
	Query *QueryResult `json:"query,omitempty" toml:"query,omitempty" yaml:"query,omitempty"`
}

// QueryResult is the result of testing a point against a sphere.
type QueryResult struct {
	Point    math32.Point3 `json:"point" toml:"point" yaml:"point"`
	Contains bool          `json:"contains" toml:"contains" yaml:"contains"`
	Distance float32       `json:"distance" toml:"distance" yaml:"distance"`
}

// NewReport returns a new [Report] for the given file, document and sphere.
func NewReport(file string, doc *pointcloud.Document, s math32.Sphere) *Report {
	bb := s.BoundingBox()
	return &Report{
		File:   file,
		Points: len(doc.Points),
		Center: s.CenterPoint(),
		Radius: s.Radius,
		Empty:  s.IsEmpty(),
		Box:    Bounds{math32.Point3FromVector3(bb.Min), math32.Point3FromVector3(bb.Max)},
	}
}

// Write writes the report to the given writer in the given format:
// text, toml, yaml, or json.
func (r *Report) Write(w io.Writer, format string) error {
	var data []byte
	var err error
	switch strings.ToLower(format) {
	case "", "text":
		return r.writeText(w)
	case "toml":
		data, err = toml.Marshal(r)
	case "yaml", "yml":
		data, err = yaml.Marshal(r)
	case "json":
		data, err = json.MarshalIndent(r, "", "\t")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (r *Report) writeText(w io.Writer) error {
	var b strings.Builder
	if r.File != "" {
		fmt.Fprintf(&b, "file:     %s\n", r.File)
	}
	fmt.Fprintf(&b, "points:   %d\n", r.Points)
	fmt.Fprintf(&b, "center:   %v\n", r.Center)
	fmt.Fprintf(&b, "radius:   %v\n", r.Radius)
	fmt.Fprintf(&b, "empty:    %v\n", r.Empty)
	fmt.Fprintf(&b, "box:      %v - %v\n", r.Box.Min, r.Box.Max)
	if q := r.Query; q != nil {
		fmt.Fprintf(&b, "point:    %v\n", q.Point)
		fmt.Fprintf(&b, "contains: %v\n", q.Contains)
		fmt.Fprintf(&b, "distance: %v\n", q.Distance)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
