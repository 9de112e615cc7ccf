// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fempost/christensen/ana"
	"github.com/fempost/christensen/mdl/failure"
)

// ChrCalc evaluates the Christensen criterion for one stress state
//  usage: go run ChrCalc.go T C S11 S22 S33 S12 S13 S23
func main() {

	// input
	T := io.ArgToFloat(0, 100)
	C := io.ArgToFloat(1, 300)
	comps := make([]float64, 6)
	for i := range comps {
		comps[i] = io.ArgToFloat(2+i, 0)
	}
	σ, err := failure.NewStress(comps)
	if err != nil {
		chk.Panic("%v", err)
	}

	// principal stresses
	p := failure.NewPrinc(σ)
	io.Pf("%-22s = %v\n", "stress", σ)
	io.Pf("%-22s = %v\n", "principal stresses", p.L)
	io.Pf("%-22s = %g\n", "ρ", p.Rho)
	io.Pf("%-22s = %g\n", "θ", p.Theta)
	io.Pf("%-22s = %g\n", "φ", p.Phi)
	io.Pf("%-22s = %g\n", "von Mises", ana.VonMises(σ[:]))

	// criterion
	res := failure.Evaluate(σ, T, C)
	io.Pforan("%-22s = %g\n", "failure index", res.Index)
	io.Pforan("%-22s = %g\n", "failure number", res.Number)
	io.Pforan("%-22s = %g\n", "equivalent stress", res.Eqv)
	if res.Undefined() {
		io.PfYel("the index is undefined for this stress state (hydrostatic)\n")
	}
	if T > C {
		io.PfRed("T > C is not supported: results are not meaningful\n")
	}
}
