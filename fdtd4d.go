// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdtd4d implements a finite-difference time-domain simulator on a
// regular four-dimensional grid: two coupled four-component vector fields,
// E and H, evolved by a leapfrog stencil update with a choice of boundary
// conditions (none, periodic, or a convolutional perfectly matched layer).
package fdtd4d

import (
	"time"

	"github.com/cpmech/gosl/io"

	"github.com/sropelinen/fdtd4d/boundary"
	"github.com/sropelinen/fdtd4d/field"
	"github.com/sropelinen/fdtd4d/stencil"
	"github.com/sropelinen/fdtd4d/taper"
)

// Shape is the logical (unpadded) grid shape (Nx,Ny,Nz,Nt).
type Shape = field.Shape

// Precision declares the accuracy class of the values Run returns. Stepping
// is always done in float64 internally (see field.Field; gosl/la is
// float64-based), matching the source's own ftype = np.float32 only at the
// boundary rather than in its arrays: Single rounds every value Run returns
// through a float32 round-trip before handing it back, the same accuracy
// loss the source takes by computing in np.float32 throughout. Double skips
// that rounding and returns the full float64 result.
type Precision int

const (
	Single Precision = iota
	Double
)

// roundFloat32 rounds every cell of f through a float32 round-trip in
// place, applied to every field Run hands back under Single precision.
func roundFloat32(f *field.Field) {
	for i, v := range f.Data {
		f.Data[i] = float64(float32(v))
	}
}

// FieldPair bundles a measurement-sliced E and H snapshot.
type FieldPair struct {
	E, H *field.Field
}

// Result is what Run returns: the final state always, plus the full
// step-by-step history when Simulator.RecordHistory is set.
type Result struct {
	Final   *FieldPair
	History []*FieldPair // length steps+1 if RecordHistory, nil otherwise
}

// attachedBCs tracks every stateful BC value ever passed to AddBC, across
// every Simulator, so a second attachment attempt (on this or another
// Simulator) is rejected as a StateError instead of silently corrupting the
// first Simulator's auxiliary state. boundary.None is exempt (see AddBC):
// it holds no state, so it is never added here. Safe under the
// single-threaded, synchronous usage §5 requires.
var attachedBCs = make(map[boundary.BC]bool)

// Simulator is the FDTD driver: it owns the padded field buffers, the
// precomputed taper masks, and the attached boundary conditions, and
// configures them the same "construct, then set fields, then call Run" way
// as gofem's Main/Domain structs.
type Simulator struct {
	Shape    Shape   // declared (unpadded) grid shape
	Boundary [4]bool // which axes carry Bt cells of padding at each end

	Bt        int       // absorbing-slab thickness per flagged axis (default 30)
	Cn        float64   // Courant number (default 0.5)
	Precision Precision // declared output accuracy (default Single)

	RecordHistory bool // if true, Run.Result.History holds every step (default false)
	Verbose       bool // if true, log progress via gosl/io (default false)

	// EInit, HInit are the writable initial condition, shape == Shape,
	// zeroed by NewSimulator; the caller mutates them before calling Run.
	EInit *field.Field
	HInit *field.Field

	bcs []boundary.BC
}

// NewSimulator returns a Simulator with default Bt, Cn and Precision, and
// zeroed EInit/HInit of the declared shape. boundary flags which axes carry
// Bt cells of absorbing padding at each end (consumed by both the lossy
// taper and any attached Absorbing BC); it does not by itself attach any
// boundary condition — call AddBC for that.
func NewSimulator(shape Shape, boundaryMask [4]bool) *Simulator {
	return &Simulator{
		Shape:     shape,
		Boundary:  boundaryMask,
		Bt:        30,
		Cn:        0.5,
		Precision: Single,
		EInit:     field.New(shape),
		HInit:     field.New(shape),
	}
}

// AddBC attaches a boundary condition. The same BC value may not be
// attached twice, to this Simulator or any other: CPML and periodic state
// is pinned to the Simulator that first initializes it.
//
// boundary.None carries no state at all (it is the empty struct{}, not a
// pointer), so the reattachment check is skipped for it: every None{} value
// compares equal to every other, and nothing about attaching it twice could
// ever corrupt anything.
func (o *Simulator) AddBC(bc boundary.BC) error {
	if bc == nil {
		return configErrorf("AddBC: nil boundary condition")
	}
	if _, isNone := bc.(boundary.None); !isNone {
		if attachedBCs[bc] {
			return stateErrorf("boundary condition already attached to a Simulator")
		}
		attachedBCs[bc] = true
	}
	o.bcs = append(o.bcs, bc)
	return nil
}

// validate checks every invariant spec.md §7 assigns to construction/Run
// start, and returns the per-axis padding implied by Boundary/Bt. It never
// mutates o.
func (o *Simulator) validate() ([4]int, error) {
	for i := 0; i < 4; i++ {
		if o.Shape[i] < 1 {
			return [4]int{}, shapeErrorf("axis %d has length %d, must be >= 1", i, o.Shape[i])
		}
	}
	if o.EInit == nil || o.EInit.Shape() != o.Shape {
		return [4]int{}, shapeErrorf("E_init shape does not match declared shape %v", o.Shape)
	}
	if o.HInit == nil || o.HInit.Shape() != o.Shape {
		return [4]int{}, shapeErrorf("H_init shape does not match declared shape %v", o.Shape)
	}
	anyAbsorbing := false
	for i := 0; i < 4; i++ {
		if o.Boundary[i] {
			anyAbsorbing = true
			if o.Shape[i] == 1 {
				return [4]int{}, shapeErrorf("axis %d is flagged absorbing but has degenerate length 1", i)
			}
		}
	}
	if o.Cn <= 0 || o.Cn > 1 {
		return [4]int{}, configErrorf("Cn = %v outside (0, 1]", o.Cn)
	}
	if anyAbsorbing && o.Bt < 1 {
		return [4]int{}, configErrorf("Bt = %d must be >= 1 when any axis is absorbing", o.Bt)
	}

	var pad [4]int
	for i := 0; i < 4; i++ {
		if o.Boundary[i] {
			pad[i] = o.Bt
		}
	}

	for _, bc := range o.bcs {
		abs, ok := bc.(*boundary.Absorbing)
		if !ok {
			continue
		}
		widths := abs.Widths()
		for axis := 0; axis < 4; axis++ {
			if widths[axis] > pad[axis] {
				return [4]int{}, configErrorf(
					"CPML thickness %d on axis %d exceeds padding %d (Boundary[%d]=%v, Bt=%d)",
					widths[axis], axis, pad[axis], axis, o.Boundary[axis], o.Bt)
			}
		}
	}
	return pad, nil
}

// Run executes steps sequential leapfrog updates, following the six-step
// procedure exactly: allocate the padded buffers and seed them from
// EInit/HInit, precompute the taper masks, initialize every attached BC,
// then for each step run pre_update_E → stencil E → post_update_E → loss →
// pre_update_H → stencil H → post_update_H → loss, finally slicing the
// padded buffers back down to the measurement shape. The per-step loop
// itself never fails; every error is returned before it starts.
func (o *Simulator) Run(steps int) (res *Result, err error) {
	start := time.Now()
	defer func() { o.onexit(start, err) }()

	if steps < 0 {
		err = configErrorf("steps = %d must be >= 0", steps)
		return nil, err
	}

	pad, verr := o.validate()
	if verr != nil {
		err = verr
		return nil, err
	}

	var padded Shape
	for i := 0; i < 4; i++ {
		padded[i] = o.Shape[i] + 2*pad[i]
	}

	if o.Verbose {
		io.Pf("> allocating padded grid %v\n", padded)
	}

	E := field.New(padded)
	H := field.New(padded)
	E.SetInterior(pad, o.EInit)
	H.SetInterior(pad, o.HInit)

	masks := taper.New(padded, o.Boundary, o.Bt)

	if o.Verbose {
		io.Pf("> initializing %d boundary condition(s)\n", len(o.bcs))
	}
	for _, bc := range o.bcs {
		bc.Init(padded, pad, o.Cn)
	}

	var history []*FieldPair
	if o.RecordHistory {
		history = make([]*FieldPair, steps+1)
		history[0] = o.snapshot(E, H, pad)
	}

	if o.Verbose {
		io.Pf("> running %d step(s)\n", steps)
	}

	for s := 0; s < steps; s++ {
		for _, bc := range o.bcs {
			bc.PreUpdateE(H)
		}
		stencil.UpdateE(E, H.Scaled(o.Cn, masks.Ds))
		for _, bc := range o.bcs {
			bc.PostUpdateE(E)
		}
		E.ScaleInPlace(masks.Loss)

		for _, bc := range o.bcs {
			bc.PreUpdateH(E)
		}
		stencil.UpdateH(H, E.Scaled(o.Cn, masks.Ds))
		for _, bc := range o.bcs {
			bc.PostUpdateH(H)
		}
		H.ScaleInPlace(masks.Loss)

		if o.RecordHistory {
			history[s+1] = o.snapshot(E, H, pad)
		}
	}

	res = &Result{
		Final:   o.snapshot(E, H, pad),
		History: history,
	}
	return res, nil
}

// snapshot slices E and H down to the measurement shape and, under Single
// precision, rounds the copies through float32.
func (o *Simulator) snapshot(E, H *field.Field, pad [4]int) *FieldPair {
	e, h := E.Interior(pad), H.Interior(pad)
	if o.Precision == Single {
		roundFloat32(e)
		roundFloat32(h)
	}
	return &FieldPair{E: e, H: h}
}

// onexit logs Run's outcome, the same ShowMsg-gated success/failure message
// gofem's Main.onexit prints around a solve.
func (o *Simulator) onexit(start time.Time, err error) {
	if !o.Verbose {
		return
	}
	if err == nil {
		io.PfGreen("> done\n")
		io.Pf("> elapsed = %v\n", time.Since(start))
		return
	}
	io.PfRed("> failed: %v\n", err)
}
