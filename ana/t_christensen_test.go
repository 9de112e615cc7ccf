// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_christensen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("christensen01. von Mises and uniaxial strengths")

	chk.Float64(tst, "vm: uniaxial", 1e-15, VonMises([]float64{7, 0, 0, 0, 0, 0}), 7)
	chk.Float64(tst, "vm: shear   ", 1e-14, VonMises([]float64{0, 0, 0, 5, 0, 0}), 5*math.Sqrt(3))
	chk.Float64(tst, "vm: hydrost ", 1e-15, VonMises([]float64{-9, -9, -9, 0, 0, 0}), 0)

	for _, tc := range [][]float64{{1, 1}, {100, 300}, {40, 50}, {10, 1000}} {
		T, C := tc[0], tc[1]
		t := UniaxialStrength(T, C, true)
		c := UniaxialStrength(T, C, false)
		io.Pforan("T=%g C=%g => t=%v c=%v\n", T, C, t, c)
		chk.Float64(tst, "tension    ", 1e-12*T, t, T)
		chk.Float64(tst, "compression", 1e-12*C, c, C)
	}
}

func Test_christensen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("christensen02. homogeneity of the index")

	σ := []float64{10, -20, 30, 5, -7, 3}
	T, C := 100.0, 300.0
	i1 := ChristensenIndex(σ, T, C)
	for _, k := range []float64{0.5, 2, 10} {
		σk := make([]float64, 6)
		for i := range σ {
			σk[i] = k * σ[i]
		}
		chk.Float64(tst, io.Sf("k=%g", k), 1e-14, ChristensenIndex(σk, T, C), k*i1)
	}

	// hydrostatic: only the linear term remains
	chk.Float64(tst, "hydrostatic tension    ", 1e-15, ChristensenIndex([]float64{50, 50, 50, 0, 0, 0}, T, C), 1)
	chk.Float64(tst, "hydrostatic compression", 1e-15, ChristensenIndex([]float64{-50, -50, -50, 0, 0, 0}, T, C), 0)
}
