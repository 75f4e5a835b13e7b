// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pointcloud reads, writes, generates and watches 3D point
// clouds, and fits bounding spheres to them with [math32.SphereFromPoints].
package pointcloud

import (
	"cogentcore.org/geom/math32"
)

// Cloud is a list of 3D points.
type Cloud []math32.Point3

// Len returns the number of points in the cloud.
func (c Cloud) Len() int {
	return len(c)
}

// Bounds returns the axis-aligned bounding box of the cloud,
// which is empty if there are no points.
func (c Cloud) Bounds() math32.Box3 {
	return math32.B3FromPoints(c)
}

// BoundingSphere returns a sphere containing every point of the cloud.
// If center is nil, the center of [Cloud.Bounds] is used.
func (c Cloud) BoundingSphere(center *math32.Point3) math32.Sphere {
	return math32.SphereFromPoints(c, center)
}

// Translate returns a new cloud with every point moved by the given offset.
func (c Cloud) Translate(offset math32.Point3) Cloud {
	off := offset.Vector3()
	nc := make(Cloud, len(c))
	for i, p := range c {
		nc[i] = math32.Point3FromVector3(p.Vector3().Add(off))
	}
	return nc
}

// Vectors returns the points of the cloud as vectors.
func (c Cloud) Vectors() []math32.Vector3 {
	vs := make([]math32.Vector3, len(c))
	for i, p := range c {
		vs[i] = p.Vector3()
	}
	return vs
}

// Document is the stored form of a point cloud, with
// an optional explicit center for its bounding sphere.
type Document struct {

	// explicit bounding sphere center; nil uses the center of the bounds
	Center *math32.Point3 `json:"center,omitempty" toml:"center,omitempty" yaml:"center,omitempty"`

	// the points of the cloud
	Points Cloud `json:"points" toml:"points" yaml:"points"`
}

// BoundingSphere returns the bounding sphere of the document points,
// around the document center if it has one.
func (d *Document) BoundingSphere() math32.Sphere {
	return d.Points.BoundingSphere(d.Center)
}
