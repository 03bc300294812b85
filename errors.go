// Copyright 2016 The Fdtd4D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd4d

import "fmt"

// ShapeError reports a malformed grid shape: a non-positive axis length, an
// E_init/H_init whose shape disagrees with the declared shape, or a BC whose
// axis flags target a degenerate axis.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return fmt.Sprintf("fdtd4d: shape error: %s", e.Reason) }

// ConfigError reports a bad configuration value: Cn outside (0,1], Bt < 1
// while some axis is absorbing, or a CPML face whose thickness exceeds the
// padding available on its axis.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return fmt.Sprintf("fdtd4d: config error: %s", e.Reason) }

// StateError reports a violated lifecycle invariant. AddBC returns it when a
// BC instance is already attached to a Simulator; Run does not return it (a
// missing or mis-shaped EInit/HInit is reported as a ShapeError).
type StateError struct {
	Reason string
}

func (e *StateError) Error() string { return fmt.Sprintf("fdtd4d: state error: %s", e.Reason) }

func shapeErrorf(format string, args ...interface{}) error {
	return &ShapeError{Reason: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func stateErrorf(format string, args ...interface{}) error {
	return &StateError{Reason: fmt.Sprintf(format, args...)}
}
