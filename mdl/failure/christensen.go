// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	ATOL   = 1e-20 // quadratic coefficient below which the state is taken as hydrostatic
	TCFRAC = 0.5   // T/C below which the fracture criterion is active
)

// Christensen implements the Christensen failure criterion with a quadratic (invariant)
// part and a maximum principal stress (fracture) part
type Christensen struct {
	T float64 // tensile strength
	C float64 // compressive strength
}

// add model to factory
func init() {
	allocators["christensen"] = func() Model { return new(Christensen) }
}

// Init initialises model
func (o *Christensen) Init(prms dbf.Params) (err error) {
	var hasT, hasC bool
	for _, p := range prms {
		switch p.N {
		case "T":
			o.T, hasT = p.V, true
		case "C":
			o.C, hasC = p.V, true
		}
	}
	if !hasT || !hasC {
		return chk.Err("christensen: parameters \"T\" and \"C\" are required")
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Christensen) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "T", V: 100},
		&dbf.P{N: "C", V: 300},
	}
}

// Strength returns T and C
func (o Christensen) Strength() (T, C float64) {
	return o.T, o.C
}

// Calc evaluates the criterion
func (o Christensen) Calc(σ Stress) Result {
	return Evaluate(σ, o.T, o.C)
}

// Evaluate computes the Christensen failure index, failure number and equivalent stress
//  Note: T and C are used as given; checking them is up to the caller
func Evaluate(σ Stress, T, C float64) Result {

	// principal stresses and polar coordinates
	p := NewPrinc(σ)

	// invariant criterion. hydrostatic states have no index
	ρinv, ok := RhoInvariant(p, T, C)
	if !ok {
		return Result{Index: math.NaN(), Number: math.NaN(), Eqv: math.NaN()}
	}

	// combine with fracture criterion
	fracture := T/C < TCFRAC
	index := p.Rho / ρinv
	if fracture {
		index = math.Max(index, p.Max()/T)
	}
	return Result{
		Index:  index,
		Number: failureNumber(p, index, ρinv, fracture, T, C),
		Eqv:    index * T,
	}
}

// RhoInvariant returns the radius of the quadratic failure surface along the stress ray
//  ok -- false if the radius is undefined: hydrostatic compression, or hydrostatic
//        tension with T == C
func RhoInvariant(p *Princ, T, C float64) (ρinv float64, ok bool) {
	n := p.Dir()
	a := (sq(n[0]-n[1]) + sq(n[0]-n[2]) + sq(n[1]-n[2])) / (2.0 * T * C)
	b := (1.0/T - 1.0/C) * (n[1] + n[0] + n[2])
	c := -1.0
	sum := p.Sum()

	// hydrostatic
	if math.Abs(a) <= ATOL {
		if sum > 0 && b != 0 {
			return -c / b, true
		}
		return 0, false
	}

	// roots of a ρ² + b ρ + c = 0
	d := math.Sqrt(b*b - 4.0*a*c)
	r0 := math.Abs((-b + d) / (2.0 * a))
	r1 := math.Abs((-b - d) / (2.0 * a))
	if sum > 0 {
		return math.Min(r0, r1), true
	}
	return math.Max(r0, r1), true
}

// failureNumber projects the stress radially onto the failure surface and classifies
// the failure mode; 0 = ductile, 1 = brittle
func failureNumber(p *Princ, index, ρinv float64, fracture bool, T, C float64) float64 {
	if math.IsNaN(index) {
		return math.NaN()
	}
	n := p.Dir()

	// radius of failure surface along n
	var r float64
	if index != 0 {
		r = p.Rho / index
	} else {
		// zero stress: limit of ρ/index along n
		r = ρinv
		if m := math.Max(n[0], math.Max(n[1], n[2])); fracture && m > 0 {
			r = math.Min(r, T/m)
		}
	}

	fn := 0.5 * (3.0*T/C - r*(n[0]+n[1]+n[2])/C)
	switch {
	case fn > 1:
		return 1
	case fn < 0:
		return 0
	}
	return fn
}

func sq(x float64) float64 { return x * x }
