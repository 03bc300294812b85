// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package boundary

import "github.com/sropelinen/fdtd4d/field"

// Periodic wraps the grid around itself on the axes flagged true. E and H
// use opposite copy directions on every wrapped axis, because E's forward
// difference at index 0 needs the value that would sit at index -1 (i.e.
// the last cell), while H's backward difference at the last index needs the
// value that would sit one past the end (i.e. the first cell).
type Periodic struct {
	X, Y, Z, T bool
}

// NewPeriodic returns a Periodic BC wrapping the axes flagged true.
func NewPeriodic(x, y, z, t bool) *Periodic {
	return &Periodic{X: x, Y: y, Z: z, T: t}
}

func (p *Periodic) Init(field.Shape, [4]int, float64) {}
func (p *Periodic) PreUpdateE(*field.Field)           {}
func (p *Periodic) PreUpdateH(*field.Field)           {}

// PostUpdateE copies each wrapped axis's last hyperplane into its first, so
// the next step's forward difference at index 0 sees the wrapped neighbor.
func (p *Periodic) PostUpdateE(E *field.Field) {
	shape := E.Shape()
	if p.X {
		E.CopyHyperplane(0, 0, shape[0]-1)
	}
	if p.Y {
		E.CopyHyperplane(1, 0, shape[1]-1)
	}
	if p.Z {
		E.CopyHyperplane(2, 0, shape[2]-1)
	}
	if p.T {
		E.CopyHyperplane(3, 0, shape[3]-1)
	}
}

// PostUpdateH copies each wrapped axis's first hyperplane into its last, the
// opposite direction of PostUpdateE, per H's backward-difference convention.
func (p *Periodic) PostUpdateH(H *field.Field) {
	shape := H.Shape()
	if p.X {
		H.CopyHyperplane(0, shape[0]-1, 0)
	}
	if p.Y {
		H.CopyHyperplane(1, shape[1]-1, 0)
	}
	if p.Z {
		H.CopyHyperplane(2, shape[2]-1, 0)
	}
	if p.T {
		H.CopyHyperplane(3, shape[3]-1, 0)
	}
}
