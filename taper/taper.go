// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package taper precomputes the lossy-taper absorbing boundary: a
// multiplicative margin profile that is 1 in the measurement interior and
// ramps linearly to 0 across the absorbing slab at each end of every
// absorbing axis.
package taper

import (
	"github.com/cpmech/gosl/fun"

	"github.com/sropelinen/fdtd4d/field"
)

// alpha is the per-step loss fraction applied inside the boundary slab.
const alpha = 0.1

// ramp01 clamps t to [0,1] using two calls to the teacher's fun.Ramp
// building block (fun.Ramp(x) = max(x,0)): ramp01(t) = Ramp(t) - Ramp(t-1).
func ramp01(t float64) float64 {
	return fun.Ramp(t) - fun.Ramp(t-1)
}

// profile1D returns the length-L margin profile for one axis: all ones if
// the axis is not absorbing, otherwise 1 in the interior and a linear ramp
// down to 0 across the outermost bt cells at each end.
func profile1D(length, bt int, absorbing bool) []float64 {
	p := make([]float64, length)
	if !absorbing || bt <= 0 {
		for i := range p {
			p[i] = 1
		}
		return p
	}
	for i := 0; i < length; i++ {
		tLeft := float64(i) / float64(bt)
		tRight := float64(length-1-i) / float64(bt)
		l := ramp01(tLeft)
		r := ramp01(tRight)
		if l < r {
			p[i] = l
		} else {
			p[i] = r
		}
	}
	return p
}

// Masks holds the two precomputed masks Simulator.Run reuses every step.
type Masks struct {
	Ds   *field.Scalar // scales the stencil's gradient source input
	Loss *field.Scalar // scales the fields themselves after each update
}

// New builds Ds and Loss for a padded grid of the given shape, where
// absorbing[a] is true iff axis a carries bt cells of padding at each end.
func New(shape field.Shape, absorbing [4]bool, bt int) *Masks {
	profiles := [4][]float64{}
	for a := 0; a < 4; a++ {
		profiles[a] = profile1D(shape[a], bt, absorbing[a])
	}

	ds := field.NewScalar(shape)
	loss := field.NewScalar(shape)
	for ix := 0; ix < shape[0]; ix++ {
		px := profiles[0][ix]
		for iy := 0; iy < shape[1]; iy++ {
			py := profiles[1][iy]
			for iz := 0; iz < shape[2]; iz++ {
				pz := profiles[2][iz]
				for it := 0; it < shape[3]; it++ {
					pt := profiles[3][it]
					linear := px * py * pz * pt
					gap := 1 - linear
					ds.Set(ix, iy, iz, it, 1-gap*gap)
					loss.Set(ix, iy, iz, it, 1-gap*gap*alpha)
				}
			}
		}
	}

	// Pin the outermost slice of every absorbing axis to exactly zero, one
	// axis at a time: this is the fix for the source's border[:,0]/
	// border[:,-1] bug, which only ever touched axis 1 because the same
	// two lines were copy-pasted for y, z and t instead of being indexed
	// per axis.
	for a := 0; a < 4; a++ {
		if !absorbing[a] || bt <= 0 {
			continue
		}
		zeroSlice(loss, a, 0)
		zeroSlice(loss, a, shape[a]-1)
	}

	return &Masks{Ds: ds, Loss: loss}
}

// zeroSlice sets every cell of the hyperplane at index idx along axis to 0.
func zeroSlice(s *field.Scalar, axis, idx int) {
	lens := s.Shape()
	idxv := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			s.Set(idxv[0], idxv[1], idxv[2], idxv[3], 0)
			return
		}
		if dim == axis {
			idxv[dim] = idx
			rec(dim + 1)
			return
		}
		for i := 0; i < lens[dim]; i++ {
			idxv[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}
