// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stencil implements the coupled 4-D curl/grad/div update that
// advances E from H and H from E. Both UpdateE and UpdateH are pure with
// respect to their source argument: they only mutate the target field, and
// allocate nothing, so Simulator.Run can call them once per step without
// growing garbage.
package stencil

import "github.com/sropelinen/fdtd4d/field"

// SignE[k][a] and SignH[k][a] are the signs of the update-E/update-H tables
// documented on UpdateE and UpdateH below, indexed by target component k and difference axis a (x=0,y=1,z=2,
// t=3). boundary.face reuses these exact tables to combine its ψ state into
// φ, since spec's CPML combine step is defined as "the same sign table as
// the stencil's update-E/update-H table".
var SignE = [4][4]float64{
	{-1, +1, -1, -1},
	{-1, -1, +1, -1},
	{+1, -1, -1, -1},
	{+1, +1, +1, -1},
}

var SignH = [4][4]float64{
	{+1, -1, +1, -1},
	{+1, +1, -1, -1},
	{-1, +1, +1, -1},
	{-1, -1, -1, -1},
}

// UpdateE adds the discrete curl/grad/div contribution of H into E, in
// place. H is expected to already carry the Cn*ds scaling the caller wants
// applied (Simulator.Run passes H.Scaled(Cn, ds)): UpdateE itself applies no
// further scaling.
//
// Sign/source table (spec, forward differences: cell i reads i and i-1, so
// cell 0 along each differenced axis is left untouched):
//
//	k\a   x        y        z        t
//	0   -Dx H3   +Dy H2   -Dz H1   -Dt H0
//	1   -Dx H2   -Dy H3   +Dz H0   -Dt H1
//	2   +Dx H1   -Dy H0   -Dz H3   -Dt H2
//	3   +Dx H0   +Dy H1   +Dz H2   -Dt H3
func UpdateE(E, H *field.Field) {
	shape := E.Shape()
	nx, ny, nz, nt := shape[0], shape[1], shape[2], shape[3]
	st := E.Strides()
	stH := H.Strides()
	e, h := E.Data, H.Data

	// axis x: k=0 -Dx H3, k=1 -Dx H2, k=2 +Dx H1, k=3 +Dx H0
	for ix := 1; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 0; it < nt; it++ {
					eo := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					ho := ix*stH[0] + iy*stH[1] + iz*stH[2] + it*stH[3]
					hom := ho - stH[0]
					e[eo+0] -= h[ho+3] - h[hom+3]
					e[eo+1] -= h[ho+2] - h[hom+2]
					e[eo+2] += h[ho+1] - h[hom+1]
					e[eo+3] += h[ho+0] - h[hom+0]
				}
			}
		}
	}

	// axis y: k=0 +Dy H2, k=1 -Dy H3, k=2 -Dy H0, k=3 +Dy H1
	for ix := 0; ix < nx; ix++ {
		for iy := 1; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 0; it < nt; it++ {
					eo := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					ho := ix*stH[0] + iy*stH[1] + iz*stH[2] + it*stH[3]
					hom := ho - stH[1]
					e[eo+0] += h[ho+2] - h[hom+2]
					e[eo+1] -= h[ho+3] - h[hom+3]
					e[eo+2] -= h[ho+0] - h[hom+0]
					e[eo+3] += h[ho+1] - h[hom+1]
				}
			}
		}
	}

	// axis z: k=0 -Dz H1, k=1 +Dz H0, k=2 -Dz H3, k=3 +Dz H2
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 1; iz < nz; iz++ {
				for it := 0; it < nt; it++ {
					eo := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					ho := ix*stH[0] + iy*stH[1] + iz*stH[2] + it*stH[3]
					hom := ho - stH[2]
					e[eo+0] -= h[ho+1] - h[hom+1]
					e[eo+1] += h[ho+0] - h[hom+0]
					e[eo+2] -= h[ho+3] - h[hom+3]
					e[eo+3] += h[ho+2] - h[hom+2]
				}
			}
		}
	}

	// axis t: all four components take -Dt H(same component). Collapsed
	// into one loop over the component axis because every t-axis sign in
	// the table above is -1 (see spec's note on the collapsed in-place
	// form); this must stay true for all 4 components or this loop needs
	// to split back into 4.
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 1; it < nt; it++ {
					eo := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					ho := ix*stH[0] + iy*stH[1] + iz*stH[2] + it*stH[3]
					hom := ho - stH[3]
					for ic := 0; ic < field.Ncomp; ic++ {
						e[eo+ic] -= h[ho+ic] - h[hom+ic]
					}
				}
			}
		}
	}
}

// UpdateH adds the discrete -curl/-grad/-div contribution of E into H, in
// place. E is expected to already carry the Cn*ds scaling the caller wants
// applied. UpdateH mirrors UpdateE with the x, y and z signs negated (the t
// column keeps -1 for every component, as in UpdateE) and backward
// differences (cell i reads i and i+1, so the last cell along each
// differenced axis is left untouched):
//
//	k\a   x        y        z        t
//	0   +Dx E3   -Dy E2   +Dz E1   -Dt E0
//	1   +Dx E2   +Dy E3   -Dz E0   -Dt E1
//	2   -Dx E1   +Dy E0   +Dz E3   -Dt E2
//	3   -Dx E0   -Dy E1   -Dz E2   -Dt E3
func UpdateH(H, E *field.Field) {
	shape := H.Shape()
	nx, ny, nz, nt := shape[0], shape[1], shape[2], shape[3]
	st := H.Strides()
	stE := E.Strides()
	h, e := H.Data, E.Data

	// axis x
	for ix := 0; ix < nx-1; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 0; it < nt; it++ {
					ho := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					eo := ix*stE[0] + iy*stE[1] + iz*stE[2] + it*stE[3]
					eop := eo + stE[0]
					h[ho+0] += e[eop+3] - e[eo+3]
					h[ho+1] += e[eop+2] - e[eo+2]
					h[ho+2] -= e[eop+1] - e[eo+1]
					h[ho+3] -= e[eop+0] - e[eo+0]
				}
			}
		}
	}

	// axis y
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny-1; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 0; it < nt; it++ {
					ho := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					eo := ix*stE[0] + iy*stE[1] + iz*stE[2] + it*stE[3]
					eop := eo + stE[1]
					h[ho+0] -= e[eop+2] - e[eo+2]
					h[ho+1] += e[eop+3] - e[eo+3]
					h[ho+2] += e[eop+0] - e[eo+0]
					h[ho+3] -= e[eop+1] - e[eo+1]
				}
			}
		}
	}

	// axis z
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz-1; iz++ {
				for it := 0; it < nt; it++ {
					ho := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					eo := ix*stE[0] + iy*stE[1] + iz*stE[2] + it*stE[3]
					eop := eo + stE[2]
					h[ho+0] += e[eop+1] - e[eo+1]
					h[ho+1] -= e[eop+0] - e[eo+0]
					h[ho+2] += e[eop+3] - e[eo+3]
					h[ho+3] -= e[eop+2] - e[eo+2]
				}
			}
		}
	}

	// axis t: again collapsed, every sign is -1.
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			for iz := 0; iz < nz; iz++ {
				for it := 0; it < nt-1; it++ {
					ho := ix*st[0] + iy*st[1] + iz*st[2] + it*st[3]
					eo := ix*stE[0] + iy*stE[1] + iz*stE[2] + it*stE[3]
					eop := eo + stE[3]
					for ic := 0; ic < field.Ncomp; ic++ {
						h[ho+ic] -= e[eop+ic] - e[eo+ic]
					}
				}
			}
		}
	}
}
