// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import "math"

// randOrGlobal returns the first of the given optional Rand
// sources, or the system global source if none.
func randOrGlobal(randOpt []Rand) Rand {
	if len(randOpt) == 0 {
		return NewGlobalRand()
	}
	return randOpt[0]
}

// UniformMeanRange returns uniform random number with given range centered at mean.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformMeanRange(mean, rng float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	return mean + rng*(rnd.Float64()-0.5)
}

// UniformMinMax returns uniform random number between min and max values inclusive
// (Do not use for generating integers - will not include max!)
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UniformMinMax(min, max float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	return min + (max-min)*rnd.Float64()
}

// GaussianGen returns gaussian (normal) random number with given
// mean and sigma standard deviation.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func GaussianGen(mean, sigma float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	return mean + sigma*rnd.NormFloat64()
}

// UnitVector returns the x, y, z components of a random direction,
// uniformly distributed on the unit sphere.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func UnitVector(randOpt ...Rand) (x, y, z float64) {
	rnd := randOrGlobal(randOpt)
	// Marsaglia (1972): pick a point in the unit disk, rejecting the rest
	for {
		u := 2*rnd.Float64() - 1
		v := 2*rnd.Float64() - 1
		s := u*u + v*v
		if s >= 1 || s == 0 {
			continue
		}
		f := 2 * math.Sqrt(1-s)
		return u * f, v * f, 1 - 2*s
	}
}
