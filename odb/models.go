// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odb

import (
	"math"
	"strings"
)

// Models is a list of all tables in the results database
var Models = []interface{}{
	&Material{},
	&Section{},
	&Instance{},
	&Element{},
	&Step{},
	&StressValue{},
	&FieldOutput{},
	&FieldValue{},
}

// Material is a material defined in the model
type Material struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:127;uniqueIndex"`
}

// Section assigns a material to elements
type Section struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"size:127;uniqueIndex"`
	Material string `gorm:"size:127"`
}

// Instance is a part instance
type Instance struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:127;uniqueIndex"`
}

// Element is one finite element of an instance
type Element struct {
	ID           uint   `gorm:"primaryKey"`
	InstanceName string `gorm:"size:127;uniqueIndex:idx_element"`
	Label        int    `gorm:"uniqueIndex:idx_element"`
	SectionName  string `gorm:"size:127"`

	// derived
	Material string `gorm:"-"` // material of section; resolved by Elements
}

// Step is an analysis step; only its last frame is stored
type Step struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:127;uniqueIndex"`
	Idx  int    // order of step in analysis
}

// StressValue holds the stress at one integration point of the last frame of a step
type StressValue struct {
	ID           uint   `gorm:"primaryKey"`
	StepName     string `gorm:"size:127;index:idx_stress"`
	InstanceName string `gorm:"size:127;index:idx_stress"`
	ElementLabel int
	Ip           int
	S11          float64
	S22          float64
	S33          float64
	S12          float64
	S13          float64
	S23          float64
}

// Comps returns the six stress components
func (o StressValue) Comps() []float64 {
	return []float64{o.S11, o.S22, o.S33, o.S12, o.S13, o.S23}
}

// FieldOutput is a scalar-triple field added to the last frame of a step
type FieldOutput struct {
	ID           uint   `gorm:"primaryKey"`
	StepName     string `gorm:"size:127;uniqueIndex:idx_field"`
	Name         string `gorm:"size:127;uniqueIndex:idx_field"`
	InstanceName string `gorm:"size:127"`
	Description  string
	Labels       string // component labels separated by LabelSep
}

// LabelSep separates component labels in FieldOutput.Labels
const LabelSep = ";"

// SetLabels sets component labels
func (o *FieldOutput) SetLabels(labels []string) {
	o.Labels = strings.Join(labels, LabelSep)
}

// GetLabels returns component labels
func (o FieldOutput) GetLabels() []string {
	if o.Labels == "" {
		return nil
	}
	return strings.Split(o.Labels, LabelSep)
}

// FieldValue holds the three components of a field at one integration point
//  Note: NaN values are stored as NULL
type FieldValue struct {
	ID            uint `gorm:"primaryKey"`
	FieldOutputID uint `gorm:"index"`
	ElementLabel  int
	Ip            int
	V0            *float64
	V1            *float64
	V2            *float64
}

// NewFieldValue returns a value with NaNs mapped to NULL
func NewFieldValue(elem, ip int, v [3]float64) FieldValue {
	return FieldValue{ElementLabel: elem, Ip: ip, V0: nullable(v[0]), V1: nullable(v[1]), V2: nullable(v[2])}
}

// Values returns the three components with NULL mapped to NaN
func (o FieldValue) Values() [3]float64 {
	return [3]float64{value(o.V0), value(o.V1), value(o.V2)}
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}

func value(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
