// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the batch evaluation of the Christensen criterion over the
// integration points of a results database and the output of the new fields
package out

import (
	"sort"

	"github.com/cpmech/gosl/io"
	"github.com/fempost/christensen/mdl/failure"
)

// field description and component labels
const (
	Description = "This field shows the utilization of the material according to the Christensen " +
		"Failure Theory. A value of 1 indicates that the material is on the edge of failure " +
		"(plastic deformation or brittle rupture)."
)

// Labels holds the labels of the three field components
var Labels = [3]string{"Failure Index", "Failure Number", "Equivalent Stress"}

// IpKey identifies one integration point by element label and integration point number
type IpKey struct {
	Elem int // element label
	Ip   int // integration point number within element
}

// String returns the key as "elem:ip"
func (o IpKey) String() string {
	return io.Sf("%d:%d", o.Elem, o.Ip)
}

// SortedKeys returns the keys of m sorted by element and integration point
func SortedKeys[T any](m map[IpKey]T) (keys []IpKey) {
	keys = make([]IpKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Elem == keys[j].Elem {
			return keys[i].Ip < keys[j].Ip
		}
		return keys[i].Elem < keys[j].Elem
	})
	return
}

// Field holds the results of one step ready to be stored
type Field struct {
	Name        string                   // unique name within step
	Description string                   // description
	Labels      [3]string                // component labels
	Values      map[IpKey]failure.Result // results at all integration points
}

// NewField returns a new field with the default description and labels
func NewField(name string, values map[IpKey]failure.Result) *Field {
	return &Field{Name: name, Description: Description, Labels: Labels, Values: values}
}

// FieldName returns the first name of the sequence base, base1, base2, ... that is not
// among the existing ones
func FieldName(existing []string, base string) string {
	taken := make(map[string]bool, len(existing))
	for _, name := range existing {
		taken[name] = true
	}
	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		name := io.Sf("%s%d", base, i)
		if !taken[name] {
			return name
		}
	}
}
