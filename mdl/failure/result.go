// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// Result holds the outcome of a failure criterion at one point
type Result struct {
	Index  float64 // failure index; 1 means onset of failure; NaN if undefined
	Number float64 // failure number in [0,1]; 0 = ductile, 1 = brittle
	Eqv    float64 // equivalent stress = Index * T
}

// Unconfigured returns the result assigned to points whose material is not evaluated
func Unconfigured() Result {
	return Result{Index: math.NaN(), Number: 0, Eqv: 0}
}

// Undefined tells whether the criterion does not apply to the stress state (e.g. hydrostatic)
func (o Result) Undefined() bool {
	return math.IsNaN(o.Index)
}

// Values returns the three output channels
func (o Result) Values() [3]float64 {
	return [3]float64{o.Index, o.Number, o.Eqv}
}

// String prints result
func (o Result) String() string {
	return io.Sf("{index=%g number=%g eqv=%g}", o.Index, o.Number, o.Eqv)
}
