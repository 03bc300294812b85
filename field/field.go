// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements the dense rank-5 field buffers shared by the
// stencil, taper and boundary packages: allocation, flat index/stride
// arithmetic, axis slicing and the measurement-slice extraction that turns a
// padded grid back into the user-visible sub-cuboid. It also implements
// Scalar, the component-less per-cell grid that backs every mask (ds, loss,
// CPML mask/sigma/b/c/psi): those quantities never vary across the 4
// field components, so storing them without a component axis cuts their
// memory to a quarter relative to the original source's arrays, which
// broadcast the same value across all 4 components explicitly.
package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Ncomp is the size of the trailing, fastest-varying component axis shared
// by every field in this package: 3 spatial-like polarizations plus one
// time-like polarization.
const Ncomp = 4

// Shape is the 4-tuple (Nx, Ny, Nz, Nt) of a field, excluding the implicit
// trailing component axis of size Ncomp. Any entry may be 1 (degenerate
// axis); stencil and boundary code never special-case that, it falls out of
// empty loop ranges.
type Shape [4]int

// Size returns the total cell count Nx*Ny*Nz*Nt (not multiplied by Ncomp).
func (s Shape) Size() int {
	return s[0] * s[1] * s[2] * s[3]
}

// Field is a dense rank-5 array of shape (Nx,Ny,Nz,Nt,Ncomp), contiguous,
// component axis fastest-varying. It backs both the E and H buffers.
type Field struct {
	shape Shape
	Data  la.Vector // flat storage, la.Vector so gosl's Vec* helpers apply directly
}

// New allocates a zeroed field of the given shape.
func New(shape Shape) *Field {
	f := &Field{shape: shape}
	f.Data = make(la.Vector, shape.Size()*Ncomp)
	return f
}

// Shape returns the field's logical shape (excluding the component axis).
func (f *Field) Shape() Shape { return f.shape }

// Strides returns the element stride of each spatial-like axis; the
// component axis always has stride 1. Exported so stencil and boundary code
// can index f.Data directly in their hot loops instead of paying a method
// call per cell.
func (f *Field) Strides() [4]int {
	s := f.shape
	return [4]int{
		s[1] * s[2] * s[3] * Ncomp,
		s[2] * s[3] * Ncomp,
		s[3] * Ncomp,
		Ncomp,
	}
}

// Index returns the flat offset of cell (ix,iy,iz,it) component ic.
func (f *Field) Index(ix, iy, iz, it, ic int) int {
	st := f.Strides()
	return ix*st[0] + iy*st[1] + iz*st[2] + it*st[3] + ic
}

// At returns the value at (ix,iy,iz,it,ic).
func (f *Field) At(ix, iy, iz, it, ic int) float64 {
	return f.Data[f.Index(ix, iy, iz, it, ic)]
}

// Set stores v at (ix,iy,iz,it,ic).
func (f *Field) Set(ix, iy, iz, it, ic int, v float64) {
	f.Data[f.Index(ix, iy, iz, it, ic)] = v
}

// Zero clears every cell to zero.
func (f *Field) Zero() {
	la.VecFill(f.Data, 0)
}

// Clone returns an independent copy of f.
func (f *Field) Clone() *Field {
	g := New(f.shape)
	copy(g.Data, f.Data)
	return g
}

// ScaleInPlace multiplies every cell of f by the corresponding cell of mask,
// broadcast across the component axis. mask must share f's spatial shape.
// Used for the per-step `E *= loss` / `H *= loss` application.
func (f *Field) ScaleInPlace(mask *Scalar) {
	if mask.shape != f.shape {
		chk.Panic("field: ScaleInPlace shape mismatch: %v vs %v", f.shape, mask.shape)
	}
	for i, m := range mask.Data {
		base := i * Ncomp
		for ic := 0; ic < Ncomp; ic++ {
			f.Data[base+ic] *= m
		}
	}
}

// Scaled returns a new field holding alpha * mask[cell] * f[cell,ic]
// cell-wise, mask broadcast across components. This is the `Cn * ds * H`
// term fed into the stencil as its source argument, and the `H * mask` /
// `E * mask` term CPML uses to restrict a field to its absorbing slab
// before differencing it.
func (f *Field) Scaled(alpha float64, mask *Scalar) *Field {
	if mask.shape != f.shape {
		chk.Panic("field: Scaled shape mismatch: %v vs %v", f.shape, mask.shape)
	}
	g := New(f.shape)
	for i, m := range mask.Data {
		base := i * Ncomp
		s := alpha * m
		for ic := 0; ic < Ncomp; ic++ {
			g.Data[base+ic] = s * f.Data[base+ic]
		}
	}
	return g
}

// AddScaled adds alpha * other cell-wise into f in place: f += alpha*other.
func (f *Field) AddScaled(alpha float64, other *Field) {
	if other.shape != f.shape {
		chk.Panic("field: AddScaled shape mismatch: %v vs %v", f.shape, other.shape)
	}
	la.VecAdd(f.Data, alpha, other.Data)
}

// Energy returns the squared Euclidean norm of the field, sum_i f[i]^2,
// i.e. the scenario (b)/(c)/(d) energy terms before combining E and H.
func (f *Field) Energy() float64 {
	n := la.VecNorm(f.Data)
	return n * n
}

// SetInterior copies src (of the measurement shape) into f's padded
// interior, offset by pad cells on each axis. f's shape must equal src's
// shape plus 2*pad on every axis. Used to seed E_init/H_init into a freshly
// allocated padded buffer at Run start.
func (f *Field) SetInterior(pad [4]int, src *Field) {
	ss := src.shape
	for i := 0; i < 4; i++ {
		if f.shape[i] != ss[i]+2*pad[i] {
			chk.Panic("field: SetInterior shape mismatch on axis %d: padded=%d src=%d pad=%d", i, f.shape[i], ss[i], pad[i])
		}
	}
	for ix := 0; ix < ss[0]; ix++ {
		for iy := 0; iy < ss[1]; iy++ {
			for iz := 0; iz < ss[2]; iz++ {
				for it := 0; it < ss[3]; it++ {
					for ic := 0; ic < Ncomp; ic++ {
						v := src.At(ix, iy, iz, it, ic)
						f.Set(ix+pad[0], iy+pad[1], iz+pad[2], it+pad[3], ic, v)
					}
				}
			}
		}
	}
}

// Interior extracts the measurement sub-cuboid of f, trimming pad cells off
// each end of every axis, as an independent copy (not a view): the returned
// field must stay valid after f's padded buffer is reused or discarded.
func (f *Field) Interior(pad [4]int) *Field {
	var outShape Shape
	for i := 0; i < 4; i++ {
		outShape[i] = f.shape[i] - 2*pad[i]
		if outShape[i] < 1 {
			chk.Panic("field: Interior pad %d too large for axis %d of size %d", pad[i], i, f.shape[i])
		}
	}
	out := New(outShape)
	for ix := 0; ix < outShape[0]; ix++ {
		for iy := 0; iy < outShape[1]; iy++ {
			for iz := 0; iz < outShape[2]; iz++ {
				for it := 0; it < outShape[3]; it++ {
					for ic := 0; ic < Ncomp; ic++ {
						v := f.At(ix+pad[0], iy+pad[1], iz+pad[2], it+pad[3], ic)
						out.Set(ix, iy, iz, it, ic, v)
					}
				}
			}
		}
	}
	return out
}

// CopyHyperplane copies the hyperplane at srcIdx along axis to the
// hyperplane at dstIdx along the same axis (all other axes, all
// components). Used by boundary.Periodic to wrap opposite faces.
func (f *Field) CopyHyperplane(axis, dstIdx, srcIdx int) {
	lens := f.shape
	idx := [4]int{}
	var rec func(dim int)
	rec = func(dim int) {
		if dim == 4 {
			for ic := 0; ic < Ncomp; ic++ {
				var src, dst [4]int
				copy(src[:], idx[:])
				copy(dst[:], idx[:])
				src[axis] = srcIdx
				dst[axis] = dstIdx
				f.Set(dst[0], dst[1], dst[2], dst[3], ic, f.At(src[0], src[1], src[2], src[3], ic))
			}
			return
		}
		if dim == axis {
			rec(dim + 1) // axis index is fixed by src/dst below, not iterated here
			return
		}
		for i := 0; i < lens[dim]; i++ {
			idx[dim] = i
			rec(dim + 1)
		}
	}
	rec(0)
}

// Scalar is a dense rank-4 array of shape (Nx,Ny,Nz,Nt), with no component
// axis: the grid of per-cell masks and CPML coefficients, every one of
// which is identical across the 4 field components by construction.
type Scalar struct {
	shape Shape
	Data  la.Vector
}

// NewScalar allocates a zeroed scalar grid of the given shape.
func NewScalar(shape Shape) *Scalar {
	return &Scalar{shape: shape, Data: make(la.Vector, shape.Size())}
}

// Shape returns the scalar grid's shape.
func (s *Scalar) Shape() Shape { return s.shape }

// Strides returns the element stride of each axis.
func (s *Scalar) Strides() [4]int {
	sh := s.shape
	return [4]int{sh[1] * sh[2] * sh[3], sh[2] * sh[3], sh[3], 1}
}

// Index returns the flat offset of cell (ix,iy,iz,it).
func (s *Scalar) Index(ix, iy, iz, it int) int {
	st := s.Strides()
	return ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
}

// At returns the value at (ix,iy,iz,it).
func (s *Scalar) At(ix, iy, iz, it int) float64 {
	return s.Data[s.Index(ix, iy, iz, it)]
}

// Set stores v at (ix,iy,iz,it).
func (s *Scalar) Set(ix, iy, iz, it int, v float64) {
	s.Data[s.Index(ix, iy, iz, it)] = v
}

// Fill sets every cell to v.
func (s *Scalar) Fill(v float64) {
	la.VecFill(s.Data, v)
}

// MulInPlace multiplies every cell of s by the corresponding cell of other,
// in place: s *= other. Used for the CPML ψ decay, ψ *= b, each step.
func (s *Scalar) MulInPlace(other *Scalar) {
	if other.shape != s.shape {
		chk.Panic("field: Scalar.MulInPlace shape mismatch: %v vs %v", s.shape, other.shape)
	}
	for i, v := range other.Data {
		s.Data[i] *= v
	}
}
