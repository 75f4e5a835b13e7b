// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import "fmt"

// Sphere represents a 3D sphere defined by its center point and a radius.
// A Sphere with a Radius <= 0 is empty. The radius is not validated,
// so negative values are stored as given.
type Sphere struct {

	// center of the sphere
	Center Vector3

	// radius of the sphere
	Radius float32
}

// NewSphere returns a new [Sphere] with the given center and radius.
// A nil center places the sphere at the origin.
func NewSphere(center *Point3, radius float32) Sphere {
	s := Sphere{Radius: radius}
	if center != nil {
		s.Center = center.Vector3()
	}
	return s
}

// SphereFromPoints returns a [Sphere] enclosing all of the given points.
// If center is nil, the center of the bounding box of the points is used.
// The radius is the distance from the center to the farthest point, so the
// result always contains the points but is not the minimal enclosing sphere.
// No points yields an empty sphere.
func SphereFromPoints(points []Point3, center *Point3) Sphere {
	s := Sphere{}
	if center != nil {
		s.Center = center.Vector3()
	} else {
		s.Center = B3FromPoints(points).Center()
	}
	var maxRadiusSq float32
	for _, p := range points {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSquared(p.Vector3()))
	}
	s.Radius = radiusForSquared(maxRadiusSq)
	return s
}

// SphereFromVectors is [SphereFromPoints] for points given as vectors.
func SphereFromVectors(points []Vector3, center *Vector3) Sphere {
	s := Sphere{}
	if center != nil {
		s.Center = *center
	} else {
		bx := B3Empty()
		bx.ExpandByPoints(points)
		s.Center = bx.Center()
	}
	var maxRadiusSq float32
	for _, p := range points {
		maxRadiusSq = Max(maxRadiusSq, s.Center.DistanceToSquared(p))
	}
	s.Radius = radiusForSquared(maxRadiusSq)
	return s
}

// radiusForSquared returns the square root of sq, rounded up
// as needed so that r*r >= sq holds in float32.
func radiusForSquared(sq float32) float32 {
	r := Sqrt(sq)
	for r*r < sq {
		r = Nextafter(r, Infinity)
	}
	return r
}

// Set sets the center and radius of this sphere.
func (s *Sphere) Set(center Vector3, radius float32) {
	s.Center = center
	s.Radius = radius
}

// CenterPoint returns the center of the sphere as a [Point3].
func (s Sphere) CenterPoint() Point3 {
	return Point3FromVector3(s.Center)
}

func (s Sphere) String() string {
	return fmt.Sprintf("{center: %v, radius: %v}", s.Center, s.Radius)
}

// IsEmpty returns true if the sphere has a radius <= 0.
func (s Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// SphereIsEmpty returns whether the given sphere is empty.
// A nil sphere is empty.
func SphereIsEmpty(s *Sphere) bool {
	return s == nil || s.IsEmpty()
}

// ContainsPoint returns whether the given point is inside the sphere.
// Points on the surface are inside.
func (s Sphere) ContainsPoint(point Point3) bool {
	return s.ContainsVector(point.Vector3())
}

// ContainsVector is [Sphere.ContainsPoint] for a point given as a vector.
func (s Sphere) ContainsVector(point Vector3) bool {
	return s.Center.DistanceToSquared(point) <= s.Radius*s.Radius
}

// DistanceToPoint returns the signed distance from the surface of the
// sphere to the given point: negative inside, zero on the surface,
// and positive outside.
func (s Sphere) DistanceToPoint(point Point3) float32 {
	return s.DistanceToVector(point.Vector3())
}

// DistanceToVector is [Sphere.DistanceToPoint] for a point given as a vector.
func (s Sphere) DistanceToVector(point Vector3) float32 {
	return Sqrt(s.Center.DistanceToSquared(point)) - s.Radius
}

// BoundingBox returns the axis-aligned bounding box of the sphere.
func (s Sphere) BoundingBox() Box3 {
	bx := B3FromVectors(s.Center, s.Center)
	bx.ExpandByScalar(s.Radius)
	return bx
}

// Translate returns a new sphere with the center moved by the given offset.
func (s Sphere) Translate(offset Point3) Sphere {
	return s.TranslateVector(offset.Vector3())
}

// TranslateVector is [Sphere.Translate] for an offset given as a vector.
func (s Sphere) TranslateVector(offset Vector3) Sphere {
	return Sphere{s.Center.Add(offset), s.Radius}
}

// IsEqual returns true if this sphere has exactly the same
// center and radius as the other sphere.
func (s Sphere) IsEqual(other Sphere) bool {
	return s.Radius == other.Radius && s.Center.IsEqual(other.Center)
}

// IsEqualTol returns true if the centers and radii of the two
// spheres differ by no more than the given tolerance.
func (s Sphere) IsEqualTol(other Sphere, tol float32) bool {
	return Abs(s.Radius-other.Radius) <= tol && s.Center.IsEqualTol(other.Center, tol)
}

// SpheresEqual returns whether the two spheres are exactly equal.
// Two nil spheres are equal, and a nil sphere is never equal
// to a non-nil one.
func SpheresEqual(a, b *Sphere) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.IsEqual(*b)
}
