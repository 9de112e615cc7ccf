// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ErrConfig is matched by all configuration errors
var ErrConfig = errors.New("invalid configuration")

// ConfigError reports invalid strengths or run settings before any computation starts
type ConfigError struct {
	Material string // material name; empty if the error is not about one material
	Msg      string // description
}

// Error implements error
func (o *ConfigError) Error() string {
	if o.Material == "" {
		return io.Sf("%v: %s", ErrConfig, o.Msg)
	}
	return io.Sf("%v: material %q: %s", ErrConfig, o.Material, o.Msg)
}

// Unwrap returns ErrConfig
func (o *ConfigError) Unwrap() error { return ErrConfig }

// Strength holds the tensile and compressive strengths of one material
type Strength struct {
	T float64 // tensile strength
	C float64 // compressive strength
}

// Skip tells whether the material is excluded from the evaluation (T = C = 0)
func (o Strength) Skip() bool {
	return o.T == 0 && o.C == 0
}

// Check checks the strengths of a material that is to be evaluated
func (o Strength) Check(name string) error {
	switch {
	case o.T < 0 || o.C < 0:
		return &ConfigError{Material: name, Msg: io.Sf("T=%g and C=%g cannot be negative", o.T, o.C)}
	case o.T == 0 || o.C == 0:
		return &ConfigError{Material: name, Msg: io.Sf("T=%g and C=%g must be both positive or both zero", o.T, o.C)}
	case o.T > o.C:
		return &ConfigError{Material: name, Msg: io.Sf("T=%g cannot be greater than C=%g", o.T, o.C)}
	}
	return nil
}
