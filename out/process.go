// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"fmt"

	"github.com/fempost/christensen/inp"
	"github.com/fempost/christensen/mdl/failure"
	"github.com/fempost/christensen/odb"
)

// Attribute assigns stress samples to integration points
//  Note: if there are as many samples as elements (one integration point per element),
//        sample i belongs to element i unless it carries a different element label;
//        otherwise the element label of each sample is used
func Attribute(elems []odb.Element, samples []odb.StressValue) (stresses map[IpKey]failure.Stress, err error) {

	// element labels
	known := make(map[int]bool, len(elems))
	for _, e := range elems {
		known[e.Label] = true
	}

	stresses = make(map[IpKey]failure.Stress, len(samples))
	linear := len(elems) == len(samples)
	for i, s := range samples {
		key := IpKey{Elem: s.ElementLabel, Ip: s.Ip}
		if linear && (s.ElementLabel == 0 || s.ElementLabel == elems[i].Label) {
			key.Elem = elems[i].Label
		} else if !known[s.ElementLabel] {
			return nil, fmt.Errorf("element %d of sample %d: %w", s.ElementLabel, i, odb.ErrNotFound)
		}
		if _, dup := stresses[key]; dup {
			return nil, fmt.Errorf("integration point %v has more than one stress sample", key)
		}
		stresses[key], err = failure.NewStress(s.Comps())
		if err != nil {
			return
		}
	}
	return
}

// MaterialOf maps element labels to material names
func MaterialOf(elems []odb.Element) map[int]string {
	m := make(map[int]string, len(elems))
	for _, e := range elems {
		m[e.Label] = e.Material
	}
	return m
}

// Process evaluates the criterion at all integration points
//  Note: points whose material has no strengths get failure.Unconfigured()
func Process(stresses map[IpKey]failure.Stress, materialOf map[int]string, strengths map[string]inp.Strength) map[IpKey]failure.Result {
	res := make(map[IpKey]failure.Result, len(stresses))
	for key, σ := range stresses {
		s, ok := strengths[materialOf[key.Elem]]
		if !ok {
			res[key] = failure.Unconfigured()
			continue
		}
		res[key] = failure.Evaluate(σ, s.T, s.C)
	}
	return res
}
