// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package failure

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Stress holds the six independent components of a symmetric Cauchy stress tensor
//  Order: S11, S22, S33, S12, S13, S23
type Stress [6]float64

// NewStress returns a stress tensor from 6 components or from the 4 planar
// components (S11, S22, S33, S12) in which case S13 = S23 = 0
func NewStress(comps []float64) (σ Stress, err error) {
	switch len(comps) {
	case 6:
		copy(σ[:], comps)
	case 4:
		copy(σ[:4], comps)
	default:
		err = chk.Err("stress tensor must have 4 or 6 components. %d is invalid", len(comps))
	}
	return
}

// Matrix returns the 3x3 symmetric matrix representation of σ
func (σ Stress) Matrix() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		σ[0], σ[3], σ[4],
		σ[3], σ[1], σ[5],
		σ[4], σ[5], σ[2],
	})
}

// PrincStresses computes the principal values of σ with a symmetric eigensolver
//  Note: the order of the values is not significant; NaNs are returned if the
//        factorisation fails
func PrincStresses(σ Stress) (l [3]float64) {
	var eig mat.EigenSym
	if !eig.Factorize(σ.Matrix(), false) {
		return [3]float64{math.NaN(), math.NaN(), math.NaN()}
	}
	copy(l[:], eig.Values(nil))
	for i, v := range l {
		if v == 0 {
			l[i] = 0 // no negative zeros; atan2(0,0) must be 0
		}
	}
	return
}

// Princ holds principal stresses and their polar representation in principal stress space
type Princ struct {
	L     [3]float64 // principal stresses σ1, σ2, σ3
	Rho   float64    // ρ = ‖(σ1,σ2,σ3)‖
	Theta float64    // θ = atan2(√(σ1²+σ2²), σ3)
	Phi   float64    // φ = atan2(σ2, σ1)

	// auxiliary
	st, ct float64 // sin(θ), cos(θ)
	sp, cp float64 // sin(φ), cos(φ)
}

// NewPrinc computes principal stresses and polar coordinates
//  Note: ρ = 0 gives θ = φ = 0 following the atan2 convention
func NewPrinc(σ Stress) (o *Princ) {
	o = new(Princ)
	o.L = PrincStresses(σ)
	s1, s2, s3 := o.L[0], o.L[1], o.L[2]
	o.Rho = math.Hypot(math.Hypot(s1, s2), s3)
	o.Theta = math.Atan2(math.Hypot(s1, s2), s3)
	o.Phi = math.Atan2(s2, s1)
	o.st, o.ct = math.Sin(o.Theta), math.Cos(o.Theta)
	o.sp, o.cp = math.Sin(o.Phi), math.Cos(o.Phi)
	return
}

// Dir returns the unit direction of the stress ray in principal stress space
func (o *Princ) Dir() [3]float64 {
	return [3]float64{o.st * o.cp, o.st * o.sp, o.ct}
}

// Sum returns σ1 + σ2 + σ3
func (o *Princ) Sum() float64 {
	return o.L[0] + o.L[1] + o.L[2]
}

// Max returns the largest principal stress
func (o *Princ) Max() float64 {
	return math.Max(o.L[0], math.Max(o.L[1], o.L[2]))
}
