// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// VonMises computes the von Mises equivalent stress
//  σ -- stress components: S11, S22, S33, S12, S13, S23
func VonMises(σ []float64) float64 {
	if len(σ) != 6 {
		chk.Panic("VonMises requires 6 stress components. %d is invalid", len(σ))
	}
	d := sq(σ[0]-σ[1]) + sq(σ[1]-σ[2]) + sq(σ[2]-σ[0])
	s := sq(σ[3]) + sq(σ[4]) + sq(σ[5])
	return math.Sqrt(0.5*d + 3.0*s)
}

// ChristensenIndex computes the failure index of the quadratic part of the Christensen
// criterion along a proportional loading path
//
//   (1/T - 1/C) I1 + [(σ1-σ2)² + (σ2-σ3)² + (σ3-σ1)²] / (2 T C) = 1
//
// Scaling σ by λ and solving for λ gives the index 1/λ = (B + √(B² + 4A)) / 2 with
//
//   A = 3 J2 / (T C)  and  B = (1/T - 1/C) I1
//
//  Note: the fracture (maximum principal stress) part is not included
func ChristensenIndex(σ []float64, T, C float64) float64 {
	vm := VonMises(σ)
	A := vm * vm / (T * C)
	B := (1.0/T - 1.0/C) * (σ[0] + σ[1] + σ[2])
	return (B + math.Sqrt(B*B+4.0*A)) / 2.0
}

// UniaxialStrength returns the uniaxial stress at failure predicted by the quadratic part
// of the Christensen criterion
//  tension -- true for σ11 > 0; false for σ11 < 0
//  Note: for positive T and C it returns T in tension and C in compression
func UniaxialStrength(T, C float64, tension bool) float64 {
	σ := []float64{1, 0, 0, 0, 0, 0}
	if !tension {
		σ[0] = -1
	}
	return 1.0 / ChristensenIndex(σ, T, C)
}

func sq(x float64) float64 { return x * x }
