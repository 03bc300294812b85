// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fdtd4dtest holds small fixture builders shared by the package
// tests: a reproducible random field for the CPML finite-value sanity
// check. Colocated with the tests that need it, the same way gofem keeps
// its own small test-fixture helpers (fem/testing.go) next to fem's
// t_*_test.go files rather than in a separate top-level tests/ tree.
package fdtd4dtest

import (
	"github.com/cpmech/gosl/rnd"

	"github.com/sropelinen/fdtd4d/field"
)

// RandomField returns a field of the given shape filled with independent
// standard-normal samples, seeded for reproducibility.
func RandomField(shape field.Shape, seed int) *field.Field {
	rnd.Init(seed)
	f := field.New(shape)
	for i := range f.Data {
		f.Data[i] = rnd.NormFloat(0, 0, 1)
	}
	return f
}
