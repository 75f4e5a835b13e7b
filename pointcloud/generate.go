// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pointcloud

import (
	"cogentcore.org/geom/base/enums"
	"cogentcore.org/geom/base/randx"
	"cogentcore.org/geom/math32"
)

// Distributions are the random point distributions of [Generate].
type Distributions int32

const (
	// Uniform points fill the cube of half-width Size around the center.
	Uniform Distributions = iota

	// Gaussian points are normally distributed around the center
	// with standard deviation Size on each axis.
	Gaussian

	// Shell points lie on the surface of the sphere of radius Size
	// around the center.
	Shell
)

var distributionMap = map[Distributions]string{Uniform: "uniform", Gaussian: "gaussian", Shell: "shell"}

var distributionValues = enums.ValueMap(distributionMap, map[string]Distributions{"gauss": Gaussian})

func (d Distributions) String() string { return enums.String(d, distributionMap) }

// SetString sets the distribution from its name.
// "gauss" is accepted for [Gaussian].
func (d *Distributions) SetString(s string) error {
	return enums.SetStringLower(d, s, distributionValues, "Distributions")
}

// MarshalText implements [encoding.TextMarshaler].
func (d Distributions) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Distributions) UnmarshalText(text []byte) error { return d.SetString(string(text)) }

// GenerateOptions are the options for [Generate].
type GenerateOptions struct {

	// distribution of the points
	Dist Distributions

	// number of points
	N int

	// center of the distribution
	Center math32.Point3

	// extent of the distribution; see [Distributions]
	Size float32
}

// Generate returns a new random cloud with the given options,
// using the given random source, or the global one if nil.
func Generate(opts GenerateOptions, rnd randx.Rand) Cloud {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	ctr := opts.Center.Vector3()
	sz := float64(opts.Size)
	c := make(Cloud, max(opts.N, 0))
	for i := range c {
		var v math32.Vector3
		switch opts.Dist {
		case Gaussian:
			v = math32.Vec3(float32(randx.GaussianGen(0, sz, rnd)), float32(randx.GaussianGen(0, sz, rnd)), float32(randx.GaussianGen(0, sz, rnd)))
		case Shell:
			x, y, z := randx.UnitVector(rnd)
			v = math32.Vec3(float32(x*sz), float32(y*sz), float32(z*sz))
		default:
			v = math32.Vec3(float32(randx.UniformMinMax(-sz, sz, rnd)), float32(randx.UniformMinMax(-sz, sz, rnd)), float32(randx.UniformMinMax(-sz, sz, rnd)))
		}
		c[i] = math32.Point3FromVector3(ctr.Add(v))
	}
	return c
}
