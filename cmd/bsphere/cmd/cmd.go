// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the bsphere tool.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/geom/base/randx"
	"cogentcore.org/geom/config"
	"cogentcore.org/geom/math32"
	"cogentcore.org/geom/pointcloud"
)

// center returns the explicit sphere center of the config, or nil.
func center(c *config.Config) (*math32.Point3, error) {
	if c.Center == "" {
		return nil, nil
	}
	p, err := math32.ParsePoint3(c.Center)
	if err != nil {
		return nil, fmt.Errorf("center: %w", err)
	}
	return &p, nil
}

// open opens the given point cloud file and returns it with its
// bounding sphere, around the config center if set, or else the
// file center if set.
func open(c *config.Config, file string) (*pointcloud.Document, math32.Sphere, error) {
	ctr, err := center(c)
	if err != nil {
		return nil, math32.Sphere{}, err
	}
	doc, err := pointcloud.Open(file)
	if err != nil {
		return nil, math32.Sphere{}, err
	}
	sc := doc.Center
	if ctr != nil {
		sc = ctr
	}
	s := doc.Points.BoundingSphere(sc)
	slog.Info("fit bounding sphere", "file", file, "points", len(doc.Points), "center", s.Center, "radius", s.Radius)
	return doc, s, nil
}

// Fit prints the bounding sphere of the given point cloud file.
func Fit(c *config.Config, out io.Writer, file string) error {
	doc, s, err := open(c, file)
	if err != nil {
		return err
	}
	return NewReport(file, doc, s).Write(out, c.Format)
}

// Query prints whether the given point is inside the bounding sphere
// of the given point cloud file, and its signed distance to the surface.
func Query(c *config.Config, out io.Writer, file, point string) error {
	p, err := math32.ParsePoint3(point)
	if err != nil {
		return fmt.Errorf("point: %w", err)
	}
	doc, s, err := open(c, file)
	if err != nil {
		return err
	}
	r := NewReport(file, doc, s)
	r.Query = &QueryResult{Point: p, Contains: s.ContainsPoint(p), Distance: s.DistanceToPoint(p)}
	return r.Write(out, c.Format)
}

// Translate moves every point of the given point cloud file by the given
// offset, and saves the result to outFile, or writes it to out in the
// format of the input (XYZ for glTF input) if outFile is empty.
func Translate(c *config.Config, out io.Writer, file, offset, outFile string) error {
	off, err := math32.ParsePoint3(offset)
	if err != nil {
		return fmt.Errorf("offset: %w", err)
	}
	doc, s, err := open(c, file)
	if err != nil {
		return err
	}
	doc.Points = doc.Points.Translate(off)
	if doc.Center != nil {
		tc := math32.Point3FromVector3(doc.Center.Vector3().Add(off.Vector3()))
		doc.Center = &tc
	}
	ts := s.Translate(off)
	slog.Info("translated bounding sphere", "center", ts.Center, "radius", ts.Radius)
	if outFile != "" {
		return pointcloud.Save(outFile, doc)
	}
	f := pointcloud.FormatFromPath(file)
	if f == pointcloud.GLTF {
		f = pointcloud.XYZ
	}
	return pointcloud.Write(out, f, doc)
}

// Gen generates a random point cloud with the gen config options,
// and saves it to outFile, or writes it to out as XYZ if outFile is empty.
func Gen(c *config.Config, out io.Writer, outFile string) error {
	ctr, err := math32.ParsePoint3(c.Gen.Center)
	if err != nil {
		return fmt.Errorf("gen center: %w", err)
	}
	seeds := randx.Seeds{c.Gen.Seed}
	if c.Gen.Seed == 0 {
		seeds.NewSeeds()
	}
	cl := pointcloud.Generate(pointcloud.GenerateOptions{Dist: c.Gen.Dist, N: c.Gen.N, Center: ctr, Size: c.Gen.Size}, seeds.Rand(0))
	doc := &pointcloud.Document{Points: cl}
	s := doc.BoundingSphere()
	slog.Info("generated point cloud", "dist", c.Gen.Dist, "points", len(cl), "seed", seeds[0], "radius", s.Radius)
	if outFile != "" {
		return pointcloud.Save(outFile, doc)
	}
	return pointcloud.Write(out, pointcloud.XYZ, doc)
}

// Watch prints the bounding sphere of the given point cloud file
// every time it changes, until the context is done.
func Watch(ctx context.Context, c *config.Config, out io.Writer, file string) error {
	ctr, err := center(c)
	if err != nil {
		return err
	}
	w := pointcloud.NewWatcher(file, func(s math32.Sphere, doc *pointcloud.Document) {
		if err := NewReport(file, doc, s).Write(out, c.Format); err != nil {
			slog.Error("writing report", "err", err)
		}
	})
	w.Center = ctr
	w.Debounce = c.Watch.Debounce()
	return w.Watch(ctx)
}
