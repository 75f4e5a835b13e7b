// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for range 100 {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.IntN(10), b.IntN(10))
	}
	g := NewGlobalRand()
	f := g.Float32()
	assert.True(t, f >= 0 && f < 1)
	assert.True(t, g.IntN(3) < 3)
}

func TestGaussian(t *testing.T) {
	rnd := NewSysRand(1)
	n := 20000
	sum, sumSq := 0.0, 0.0
	for range n {
		v := GaussianGen(5, 2, rnd)
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(n)
	std := math.Sqrt(sumSq/float64(n) - mean*mean)
	assert.InDelta(t, 5, mean, 0.1)
	assert.InDelta(t, 2, std, 0.1)
}

func TestUniform(t *testing.T) {
	rnd := NewSysRand(2)
	for range 1000 {
		v := UniformMeanRange(10, 4, rnd)
		assert.True(t, v >= 8 && v < 12)
		v = UniformMinMax(-1, 1, rnd)
		assert.True(t, v >= -1 && v < 1)
	}
}

func TestUnitVector(t *testing.T) {
	rnd := NewSysRand(3)
	for range 1000 {
		x, y, z := UnitVector(rnd)
		assert.InDelta(t, 1, x*x+y*y+z*z, 1.0e-9)
	}
}

func TestSeeds(t *testing.T) {
	var s Seeds
	s.Init(3)
	assert.Equal(t, Seeds{1, 2, 3}, s)
	assert.Equal(t, NewSysRand(2).Float64(), s.Rand(1).Float64())
	s.NewSeeds()
	assert.Equal(t, s[0]+2, s[2])
}
