// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package taper

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/sropelinen/fdtd4d/field"
)

func TestNonAbsorbingAxisIsAllOnes(tst *testing.T) {
	chk.PrintTitle("NonAbsorbingAxisIsAllOnes. no axis flagged absorbing leaves ds=loss=1 everywhere")

	shape := field.Shape{5, 5, 1, 5}
	m := New(shape, [4]bool{false, false, false, false}, 2)
	for ix := 0; ix < shape[0]; ix++ {
		for iy := 0; iy < shape[1]; iy++ {
			for iz := 0; iz < shape[2]; iz++ {
				for it := 0; it < shape[3]; it++ {
					chk.Scalar(tst, "ds", 1e-15, m.Ds.At(ix, iy, iz, it), 1)
					chk.Scalar(tst, "loss", 1e-15, m.Loss.At(ix, iy, iz, it), 1)
				}
			}
		}
	}
}

func TestAbsorbingAxisPinsOuterEdgeToZero(tst *testing.T) {
	chk.PrintTitle("AbsorbingAxisPinsOuterEdgeToZero. loss is exactly zero at every absorbing axis's extreme slices")

	shape := field.Shape{10, 10, 1, 10}
	m := New(shape, [4]bool{true, true, false, true}, 3)

	chk.Scalar(tst, "loss x=0", 1e-15, m.Loss.At(0, 5, 0, 5), 0)
	chk.Scalar(tst, "loss x=last", 1e-15, m.Loss.At(shape[0]-1, 5, 0, 5), 0)
	chk.Scalar(tst, "loss y=0", 1e-15, m.Loss.At(5, 0, 0, 5), 0)
	chk.Scalar(tst, "loss y=last", 1e-15, m.Loss.At(5, shape[1]-1, 0, 5), 0)
	chk.Scalar(tst, "loss t=0", 1e-15, m.Loss.At(5, 5, 0, 0), 0)
	chk.Scalar(tst, "loss t=last", 1e-15, m.Loss.At(5, 5, 0, shape[3]-1), 0)
}

func TestInteriorIsUnattenuated(tst *testing.T) {
	chk.PrintTitle("InteriorIsUnattenuated. cells far from any absorbing edge keep ds=loss=1")

	shape := field.Shape{20, 20, 1, 20}
	m := New(shape, [4]bool{true, true, false, true}, 3)
	center := [4]int{10, 10, 0, 10}
	chk.Scalar(tst, "ds center", 1e-15, m.Ds.At(center[0], center[1], center[2], center[3]), 1)
	chk.Scalar(tst, "loss center", 1e-15, m.Loss.At(center[0], center[1], center[2], center[3]), 1)
}

func TestRamp01Clamps(tst *testing.T) {
	chk.PrintTitle("Ramp01Clamps. ramp01 saturates outside [0,1] and is linear inside")

	chk.Scalar(tst, "below zero", 1e-15, ramp01(-5), 0)
	chk.Scalar(tst, "above one", 1e-15, ramp01(5), 1)
	chk.Scalar(tst, "midpoint", 1e-15, ramp01(0.5), 0.5)
}
