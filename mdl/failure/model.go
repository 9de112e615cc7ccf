// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package failure implements failure criteria evaluated at integration points
/*
 *   stress (S11,S22,S33,S12,S13,S23)
 *        |
 *        | eigenvalues           σ1, σ2, σ3
 *        | polar coordinates     ρ, θ, φ
 *        |
 *   criterion (T, C)
 *        |
 *        | invariant radius      ρinv
 *        | fracture term         max(σi)
 *        |
 *   Result{Index, Number, Eqv}
 */
package failure

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for failure criteria
type Model interface {
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
	Strength() (T, C float64)   // returns tensile and compressive strengths
	Calc(σ Stress) Result       // evaluates the criterion for one stress state
}

// New returns new failure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'failure' database", name)
	}
	return allocator(), nil
}

// allocators holds all available failure models; modelname => allocator
var allocators = map[string]func() Model{}
