// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides a Rand interface over the standard
// random number generator, with an optional separate seeded
// source, and random distributions built on it.
package randx

import "math/rand/v2"

// Rand provides an interface with the [rand.Rand] methods used
// in this module, to support the use of either the global rand
// generator or a separate Rand source.
type Rand interface {
	// IntN returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	IntN(n int) int

	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64

	// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
	Float32() float32

	// NormFloat64 returns a normally distributed float64 in the range
	// [-math.MaxFloat64, +math.MaxFloat64] with
	// standard normal distribution (mean = 0, stddev = 1).
	// To produce a different normal distribution, callers can
	// adjust the output using:
	//
	//	sample = NormFloat64() * desiredStdDev + desiredMean
	NormFloat64() float64
}

// SysRand supports the system random number generator
// for either a separate rand.Rand source, or, if that
// is nil, the global rand stream.
type SysRand struct {

	// if non-nil, use this random number source instead of the global default one
	Rand *rand.Rand
}

// NewGlobalRand returns a new SysRand that implements the
// randx.Rand interface, with the system global rand source.
func NewGlobalRand() *SysRand {
	return &SysRand{}
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed uint64) *SysRand {
	r := &SysRand{}
	r.NewRand(seed)
	return r
}

// NewRand sets Rand to a new rand.Rand source using given seed.
func (r *SysRand) NewRand(seed uint64) {
	r.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntN returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
// It panics if n <= 0.
func (r *SysRand) IntN(n int) int {
	if r.Rand == nil {
		return rand.IntN(n)
	}
	return r.Rand.IntN(n)
}

// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float64() float64 {
	if r.Rand == nil {
		return rand.Float64()
	}
	return r.Rand.Float64()
}

// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
func (r *SysRand) Float32() float32 {
	if r.Rand == nil {
		return rand.Float32()
	}
	return r.Rand.Float32()
}

// NormFloat64 returns a normally distributed float64 with
// mean 0 and standard deviation 1.
func (r *SysRand) NormFloat64() float64 {
	if r.Rand == nil {
		return rand.NormFloat64()
	}
	return r.Rand.NormFloat64()
}
