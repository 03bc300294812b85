// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/sropelinen/fdtd4d/field"
	"github.com/sropelinen/fdtd4d/stencil"
)

// epsSigma keeps the CPML recursion coefficient c = (b-1)*sigma/(sigma+eps)
// finite where sigma is exactly zero (b is exactly 1 there too, so the
// numerator is zero and the choice of eps never shows up in the result).
// 1e-8 matches boundaries.py's own guard exactly, including its use inside
// the exp() call as well as the division.
const epsSigma = 1e-8

// compTable[axis][k] is the H (or E) component read by the k-th flavor of a
// face on the given difference axis, taken verbatim from the stencil's own
// update tables (stencil.SignE/SignH give the matching sign for the same
// (k,axis) pair): axis x reads components in reverse, y and z rotate in
// pairs, t reads the same component it writes.
var compTable = [4][4]int{
	{3, 2, 1, 0},
	{2, 3, 0, 1},
	{1, 0, 3, 2},
	{0, 1, 2, 3},
}

// face is a single CPML slab: one side (low or high) of one axis. Absorbing
// composes up to 8 of these, two per absorbing axis. Unlike the source's
// general per-(flavor,axis) ψ/φ array, a single face only ever needs one ψ
// scalar grid per target component (4 total for E, 4 for H): the other axis
// slots of the source's 4×4 ψ structure are structurally zero for any one
// face, since a face only ever differences along its own axis.
type face struct {
	axis  int
	high  bool
	w     int
	cn    float64
	shape field.Shape

	mask             *field.Scalar
	bE, cE, bH, cH   *field.Scalar
	psiE, psiH       [4]*field.Scalar
}

func newFace(axis int, high bool, w int) *face {
	return &face{axis: axis, high: high, w: w}
}

func (f *face) slabRange(length int) (lo, hi int) {
	if f.high {
		return length - f.w, length
	}
	return 0, f.w
}

func (f *face) init(shape field.Shape, pad [4]int, cn float64) {
	if f.w > pad[f.axis] {
		chk.Panic("boundary: CPML width %d on axis %d exceeds padding %d", f.w, f.axis, pad[f.axis])
	}
	f.shape = shape
	f.cn = cn
	length := shape[f.axis]
	lo, hi := f.slabRange(length)

	sigE := make([]float64, length)
	sigH := make([]float64, length)
	if f.high {
		he := sigmaHighE(f.w)
		for i := 0; i < f.w; i++ {
			sigE[length-f.w+i] = he[i]
		}
		hh := sigmaHighH(f.w)
		for i := range hh {
			sigH[length-f.w+i] = hh[i]
		}
	} else {
		le := sigmaLowE(f.w)
		for i := 0; i < f.w; i++ {
			sigE[i] = le[i]
		}
		lh := sigmaLowH(f.w)
		for i := range lh {
			sigH[i] = lh[i]
		}
	}

	f.mask = field.NewScalar(shape)
	f.bE = field.NewScalar(shape)
	f.cE = field.NewScalar(shape)
	f.bH = field.NewScalar(shape)
	f.cH = field.NewScalar(shape)
	for k := 0; k < 4; k++ {
		f.psiE[k] = field.NewScalar(shape)
		f.psiH[k] = field.NewScalar(shape)
	}

	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			i := idx[f.axis]
			m := 0.0
			if i >= lo && i < hi {
				m = 1
			}
			se, sh := sigE[i], sigH[i]
			be0 := math.Exp(-(se + epsSigma) * cn)
			ce0 := (be0 - 1) * se / (se + epsSigma)
			bh0 := math.Exp(-(sh + epsSigma) * cn)
			ch0 := (bh0 - 1) * sh / (sh + epsSigma)
			f.mask.Set(idx[0], idx[1], idx[2], idx[3], m)
			f.bE.Set(idx[0], idx[1], idx[2], idx[3], be0*m)
			f.cE.Set(idx[0], idx[1], idx[2], idx[3], ce0*m)
			f.bH.Set(idx[0], idx[1], idx[2], idx[3], bh0*m)
			f.cH.Set(idx[0], idx[1], idx[2], idx[3], ch0*m)
			return
		}
		for i := 0; i < shape[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// PreUpdateE decays ψE by bE, then accumulates the mask-restricted forward
// difference of H into it, one target E component at a time. Run before the
// stencil's own E update, on the same (unscaled) H the stencil is about to
// read.
func (f *face) PreUpdateE(H *field.Field) {
	for k := 0; k < 4; k++ {
		f.psiE[k].MulInPlace(f.bE)
	}
	hm := H.Scaled(1, f.mask)
	axis := f.axis
	shape := f.shape
	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			if idx[axis] < 1 {
				return
			}
			c := f.cE.At(idx[0], idx[1], idx[2], idx[3])
			if c == 0 {
				return
			}
			var prev [4]int
			prev = idx
			prev[axis]--
			for k := 0; k < 4; k++ {
				comp := compTable[axis][k]
				diff := hm.At(idx[0], idx[1], idx[2], idx[3], comp) - hm.At(prev[0], prev[1], prev[2], prev[3], comp)
				v := f.psiE[k].At(idx[0], idx[1], idx[2], idx[3]) + diff*c
				f.psiE[k].Set(idx[0], idx[1], idx[2], idx[3], v)
			}
			return
		}
		for i := 0; i < shape[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// PreUpdateH is PreUpdateE's mirror: backward difference of E, one target H
// component at a time.
func (f *face) PreUpdateH(E *field.Field) {
	for k := 0; k < 4; k++ {
		f.psiH[k].MulInPlace(f.bH)
	}
	em := E.Scaled(1, f.mask)
	axis := f.axis
	shape := f.shape
	n := shape[axis]
	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			if idx[axis] >= n-1 {
				return
			}
			c := f.cH.At(idx[0], idx[1], idx[2], idx[3])
			if c == 0 {
				return
			}
			var next [4]int
			next = idx
			next[axis]++
			for k := 0; k < 4; k++ {
				comp := compTable[axis][k]
				diff := em.At(next[0], next[1], next[2], next[3], comp) - em.At(idx[0], idx[1], idx[2], idx[3], comp)
				v := f.psiH[k].At(idx[0], idx[1], idx[2], idx[3]) + diff*c
				f.psiH[k].Set(idx[0], idx[1], idx[2], idx[3], v)
			}
			return
		}
		for i := 0; i < shape[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// PostUpdateE adds the φE correction into E, reusing the stencil's own
// update-E sign table for the (target component, axis) pair this face
// differences along.
func (f *face) PostUpdateE(E *field.Field) {
	shape := f.shape
	axis := f.axis
	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			for k := 0; k < 4; k++ {
				sign := stencil.SignE[k][axis]
				psi := f.psiE[k].At(idx[0], idx[1], idx[2], idx[3])
				if psi == 0 {
					continue
				}
				cur := E.At(idx[0], idx[1], idx[2], idx[3], k)
				E.Set(idx[0], idx[1], idx[2], idx[3], k, cur+f.cn*sign*psi)
			}
			return
		}
		for i := 0; i < shape[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// PostUpdateH mirrors PostUpdateE using stencil.SignH.
func (f *face) PostUpdateH(H *field.Field) {
	shape := f.shape
	axis := f.axis
	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			for k := 0; k < 4; k++ {
				sign := stencil.SignH[k][axis]
				psi := f.psiH[k].At(idx[0], idx[1], idx[2], idx[3])
				if psi == 0 {
					continue
				}
				cur := H.At(idx[0], idx[1], idx[2], idx[3], k)
				H.Set(idx[0], idx[1], idx[2], idx[3], k, cur+f.cn*sign*psi)
			}
			return
		}
		for i := 0; i < shape[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// sigmaCubed is the per-cell CPML conductivity profile: a cubic ramp from
// (nearly) zero at the interior edge of the slab to its peak at the
// outermost grid cell, normalized by slab width w.
func sigmaCubed(x float64, w int) float64 {
	wf := float64(w)
	return 40 * x * x * x / math.Pow(wf+1, 4)
}

// sigmaHighE/sigmaLowE build the w-length E profile for a high/low face;
// sigmaHighH/sigmaLowH build the w-1-length H profile (H's backward
// difference never reaches the outermost cell of the slab, so it has one
// fewer coefficient than E's forward difference).
func sigmaHighE(w int) []float64 {
	s := make([]float64, w)
	for i := 0; i < w; i++ {
		s[i] = sigmaCubed(float64(i)+0.5, w)
	}
	return s
}

func sigmaHighH(w int) []float64 {
	if w < 2 {
		return nil
	}
	s := make([]float64, w-1)
	for i := 0; i < w-1; i++ {
		s[i] = sigmaCubed(float64(i)+1, w)
	}
	return s
}

func sigmaLowE(w int) []float64 {
	s := make([]float64, w)
	for i := 0; i < w; i++ {
		s[i] = sigmaCubed(float64(w)-0.5-float64(i), w)
	}
	return s
}

func sigmaLowH(w int) []float64 {
	if w < 2 {
		return nil
	}
	s := make([]float64, w-1)
	for i := 0; i < w-1; i++ {
		s[i] = sigmaCubed(float64(w)-float64(i+1), w)
	}
	return s
}

// Absorbing is a composite BC: up to 8 independent faces, two per axis with
// nonzero CPML width. Its four hooks simply fan out to every face in turn.
// The two faces of one axis never overlap for the widths Init accepts
// (pad[axis] must cover f.w on both sides of that axis); faces of different
// axes share their corner cells, but each face only updates its own ψ and
// adds its own correction into E/H, so call order between faces never
// matters.
type Absorbing struct {
	faces []*face
}

// NewAbsorbing builds the low/high face pair for every axis whose width is
// greater than zero. A width of 0 on an axis means that axis carries no CPML
// absorption at all (it may still be periodic, or plain, or tapered).
func NewAbsorbing(wx, wy, wz, wt int) *Absorbing {
	a := &Absorbing{}
	widths := [4]int{wx, wy, wz, wt}
	for axis := 0; axis < 4; axis++ {
		if widths[axis] > 0 {
			a.faces = append(a.faces, newFace(axis, false, widths[axis]))
			a.faces = append(a.faces, newFace(axis, true, widths[axis]))
		}
	}
	return a
}

// Widths returns, per axis, the CPML thickness this composite was built
// with (0 if the axis carries no face). Simulator uses this to validate
// fit against the padding it is about to allocate, before Init ever runs,
// so a misconfigured width surfaces as a returned ConfigError rather than
// the internal chk.Panic inside face.init.
func (a *Absorbing) Widths() [4]int {
	var w [4]int
	for _, f := range a.faces {
		w[f.axis] = f.w
	}
	return w
}

func (a *Absorbing) Init(shape field.Shape, pad [4]int, cn float64) {
	for _, f := range a.faces {
		f.init(shape, pad, cn)
	}
}

func (a *Absorbing) PreUpdateE(H *field.Field) {
	for _, f := range a.faces {
		f.PreUpdateE(H)
	}
}

func (a *Absorbing) PreUpdateH(E *field.Field) {
	for _, f := range a.faces {
		f.PreUpdateH(E)
	}
}

func (a *Absorbing) PostUpdateE(E *field.Field) {
	for _, f := range a.faces {
		f.PostUpdateE(E)
	}
}

func (a *Absorbing) PostUpdateH(H *field.Field) {
	for _, f := range a.faces {
		f.PostUpdateH(H)
	}
}
