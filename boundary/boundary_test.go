// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/sropelinen/fdtd4d/field"
)

func fillRamp(f *field.Field) {
	for i := range f.Data {
		f.Data[i] = float64(i%13) - 6
	}
}

func TestNoneIsNoOp(tst *testing.T) {
	chk.PrintTitle("NoneIsNoOp. None never touches its argument")

	shape := field.Shape{3, 3, 3, 3}
	n := None{}
	n.Init(shape, [4]int{0, 0, 0, 0}, 0.5)

	E := field.New(shape)
	fillRamp(E)
	before := E.Clone()
	n.PreUpdateE(field.New(shape))
	n.PostUpdateE(E)
	chk.Array(tst, "E unchanged", 1e-15, E.Data, before.Data)
}

func TestPeriodicWrapsExactly(tst *testing.T) {
	chk.PrintTitle("PeriodicWrapsExactly. E copies last->first, H copies first->last")

	shape := field.Shape{4, 3, 1, 2}
	p := NewPeriodic(true, false, false, true)

	E := field.New(shape)
	fillRamp(E)
	p.PostUpdateE(E)
	for iy := 0; iy < shape[1]; iy++ {
		for iz := 0; iz < shape[2]; iz++ {
			for it := 0; it < shape[3]; it++ {
				for ic := 0; ic < field.Ncomp; ic++ {
					chk.Scalar(tst, "x wrap", 1e-15, E.At(0, iy, iz, it, ic), E.At(shape[0]-1, iy, iz, it, ic))
				}
			}
		}
	}
	for ix := 0; ix < shape[0]; ix++ {
		for iy := 0; iy < shape[1]; iy++ {
			for iz := 0; iz < shape[2]; iz++ {
				for ic := 0; ic < field.Ncomp; ic++ {
					chk.Scalar(tst, "t wrap", 1e-15, E.At(ix, iy, iz, 0, ic), E.At(ix, iy, iz, shape[3]-1, ic))
				}
			}
		}
	}

	H := field.New(shape)
	fillRamp(H)
	p.PostUpdateH(H)
	for iy := 0; iy < shape[1]; iy++ {
		for iz := 0; iz < shape[2]; iz++ {
			for it := 0; it < shape[3]; it++ {
				for ic := 0; ic < field.Ncomp; ic++ {
					chk.Scalar(tst, "x wrap H", 1e-15, H.At(shape[0]-1, iy, iz, it, ic), H.At(0, iy, iz, it, ic))
				}
			}
		}
	}
}

func TestAbsorbingWidths(tst *testing.T) {
	chk.PrintTitle("AbsorbingWidths. Widths reports exactly the constructor's per-axis thickness")

	a := NewAbsorbing(2, 0, 3, 0)
	got := a.Widths()
	want := [4]int{2, 0, 3, 0}
	chk.IntAssert(got[0], want[0])
	chk.IntAssert(got[1], want[1])
	chk.IntAssert(got[2], want[2])
	chk.IntAssert(got[3], want[3])
}

func TestAbsorbingNoOpOnZeroFieldsAfterInit(tst *testing.T) {
	chk.PrintTitle("AbsorbingNoOpOnZeroFieldsAfterInit. zero ψ and zero input leave E/H untouched")

	shape := field.Shape{20, 20, 1, 20}
	pad := [4]int{5, 5, 0, 5}
	a := NewAbsorbing(5, 5, 0, 5)
	a.Init(shape, pad, 0.5)

	H := field.New(shape)
	E := field.New(shape)
	a.PreUpdateE(H)
	before := E.Clone()
	a.PostUpdateE(E)
	chk.Array(tst, "E unchanged", 1e-15, E.Data, before.Data)

	a.PreUpdateH(E)
	beforeH := H.Clone()
	a.PostUpdateH(H)
	chk.Array(tst, "H unchanged", 1e-15, H.Data, beforeH.Data)
}

func TestAbsorbingPsiStaysZeroOutsideSlab(tst *testing.T) {
	chk.PrintTitle("AbsorbingPsiStaysZeroOutsideSlab. a uniform H only excites ψ inside the slab's own face")

	shape := field.Shape{12, 1, 1, 1}
	pad := [4]int{4, 0, 0, 0}
	a := NewAbsorbing(4, 0, 0, 0)
	a.Init(shape, pad, 0.5)

	H := field.New(shape)
	for i := range H.Data {
		H.Data[i] = 1
	}
	a.PreUpdateE(H)

	E := field.New(shape)
	a.PostUpdateE(E)

	// the four interior cells (indices 4..7) sit outside both faces' slabs
	// (low slab is [0,4), high slab is [8,12)); no face should have
	// perturbed E there.
	for ix := 4; ix < 8; ix++ {
		for ic := 0; ic < field.Ncomp; ic++ {
			chk.Scalar(tst, "interior untouched", 1e-15, E.At(ix, 0, 0, 0, ic), 0)
		}
	}
}
