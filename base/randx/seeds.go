// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"time"
)

// Seeds is a set of random seeds, typically used one per generated cloud.
type Seeds []uint64

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]uint64, n)
	for i := range *rs {
		(*rs)[i] = uint64(i) + 1
	}
}

// Rand returns a new seeded [SysRand] for the seed at the given index.
func (rs Seeds) Rand(idx int) *SysRand {
	return NewSysRand(rs[idx])
}

// NewSeeds sets a new set of random seeds based on current time
func (rs *Seeds) NewSeeds() {
	rn := uint64(time.Now().UnixNano())
	for i := range *rs {
		(*rs)[i] = rn + uint64(i)
	}
}
