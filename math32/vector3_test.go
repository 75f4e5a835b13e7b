// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{5, 10, 15}, Vec3(5, 10, 15))
	assert.Equal(t, Vector3{20, 20, 20}, Vector3Scalar(20))

	v := Vector3{}
	assert.True(t, v.IsNil())
	v.Set(-1, 7, 2)
	assert.Equal(t, Vector3{-1, 7, 2}, v)
	v.SetDim(Z, 3)
	assert.Equal(t, float32(3), v.Dim(Z))
	v.SetScalar(8.12)
	assert.Equal(t, Vector3{8.12, 8.12, 8.12}, v)
	v.SetZero()
	assert.Equal(t, Vector3{}, v)
	assert.Panics(t, func() { v.Dim(Dims(5)) })

	a := Vec3(1, 2, 3)
	b := Vec3(4, -5, 6)
	assert.Equal(t, Vec3(5, -3, 9), a.Add(b))
	assert.Equal(t, Vec3(-3, 7, -3), a.Sub(b))
	assert.Equal(t, Vec3(2, 3, 4), a.AddScalar(1))
	assert.Equal(t, Vec3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, Vec3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, Vec3(0.5, 1, 1.5), a.DivScalar(2))
	assert.Equal(t, Vector3{}, a.DivScalar(0))
	assert.Equal(t, Vec3(-1, -2, -3), a.Negate())
	assert.Equal(t, float32(12), a.Dot(b))
	assert.Equal(t, float32(14), a.LengthSquared())
	assert.Equal(t, float32(5), Vec3(3, 4, 0).Length())
	assert.Equal(t, float32(5), Vec3(1, 1, 1).DistanceTo(Vec3(4, 5, 1)))
	assert.Equal(t, float32(25), Vec3(1, 1, 1).DistanceToSquared(Vec3(4, 5, 1)))
	assert.Equal(t, Vec3(1, -5, 3), a.Min(b))
	assert.Equal(t, Vec3(4, 2, 6), a.Max(b))

	c := a
	c.SetAdd(b)
	c.SetSub(b)
	assert.Equal(t, a, c)
	c.SetAddScalar(2)
	c.SetSubScalar(1)
	c.SetMulScalar(2)
	assert.Equal(t, Vec3(4, 6, 8), c)
	c.Clamp(Vec3(0, 0, 0), Vec3(5, 5, 5))
	assert.Equal(t, Vec3(4, 5, 5), c)

	assert.True(t, a.IsEqual(Vec3(1, 2, 3)))
	assert.False(t, a.IsEqual(Vec3(1, 2, 3.0001)))
	assert.True(t, a.IsEqualTol(Vec3(1, 2, 3.0001), 0.001))
	assert.Equal(t, "(1, 2, 3)", a.String())
}

func TestPoint3(t *testing.T) {
	p := P3(1, 2, 3)
	assert.Equal(t, Vec3(1, 2, 3), p.Vector3())
	assert.Equal(t, p, Point3FromVector3(Vec3(1, 2, 3)))
	assert.Equal(t, "(1, 2, 3)", p.String())
}

func TestParsePoint3(t *testing.T) {
	p, err := ParsePoint3("1,2.5,-3")
	assert.NoError(t, err)
	assert.Equal(t, P3(1, 2.5, -3), p)

	p, err = ParsePoint3(" 1 2  3 ")
	assert.NoError(t, err)
	assert.Equal(t, P3(1, 2, 3), p)

	_, err = ParsePoint3("1,2")
	assert.Error(t, err)
	_, err = ParsePoint3("1,2,x")
	assert.Error(t, err)

	p, err = ParsePoint3Prefix("1\t2,3 0.5 255")
	assert.NoError(t, err)
	assert.Equal(t, P3(1, 2, 3), p)
	_, err = ParsePoint3("1 2 3 4")
	assert.Error(t, err)
	_, err = ParsePoint3Prefix("1 2")
	assert.Error(t, err)
	_, err = ParsePoint3Prefix("1 y 3 4")
	assert.Error(t, err)
}
