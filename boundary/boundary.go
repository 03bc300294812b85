// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boundary implements the BoundaryCondition tagged variant: None,
// Periodic and Absorbing (a composite of single-face CPML instances). It
// follows the teacher's "no class hierarchy for variants" idiom, seen
// throughout gofem's material-model packages (mreten, msolid) as a factory
// of concrete structs behind a single interface, rather than embedding or
// inheritance.
package boundary

import "github.com/sropelinen/fdtd4d/field"

// BC is the hook interface Simulator.Run invokes around each stencil
// update. Init is called once, after the padded shape and Courant number
// are frozen, before the step loop starts.
//
// Go-shape deviation from the source design: the hooks here take the padded
// shape, per-axis padding and Cn directly instead of a back-reference to the
// whole Simulator, so that this package never has to import the root
// package (which itself imports boundary to hold a BC list) — see
// SPEC_FULL.md §4.3. Every value the original "init(parent)" hook reads is
// still reachable, just passed as a parameter. Post-update hooks mutate
// their argument in place and return nothing: Go's pointer semantics make
// the source's "E = post_update_E(E)" rebinding unnecessary.
type BC interface {
	Init(shape field.Shape, pad [4]int, cn float64)
	PreUpdateE(H *field.Field)
	PreUpdateH(E *field.Field)
	PostUpdateE(E *field.Field)
	PostUpdateH(H *field.Field)
}

var (
	_ BC = None{}
	_ BC = (*Periodic)(nil)
	_ BC = (*Absorbing)(nil)
)

// None is the no-op boundary condition: the grid simply ends at its edges.
type None struct{}

func (None) Init(field.Shape, [4]int, float64) {}
func (None) PreUpdateE(*field.Field)           {}
func (None) PreUpdateH(*field.Field)           {}
func (None) PostUpdateE(*field.Field)          {}
func (None) PostUpdateH(*field.Field)          {}
