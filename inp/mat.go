// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/fempost/christensen/mdl/failure"
)

// default failure model
const DefaultModel = "christensen"

// Material holds material data
type Material struct {

	// input
	Name  string     `json:"name"`  // name of material; must match the name in the results database
	Model string     `json:"model"` // name of failure model; default is "christensen"
	Extra string     `json:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms"`  // prms holds all model parameters for this material; e.g. T and C

	// derived
	Failure failure.Model // pointer to actual failure model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials strengths
type MatDb struct {
	Materials MatsData `json:"materials"` // all materials
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {
	defer func() {
		if r := recover(); r != nil {
			mdb, err = nil, chk.Err("cannot read materials file:\n%v", r)
		}
	}()
	b := io.ReadFile(filepath.Join(dir, fn)) // panics if the file cannot be read
	return ParseMat(b)
}

// ParseMat decodes materials data and allocates failure models
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// decode
	mdb = new(MatDb)
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials file:\n%v", err)
	}

	// alloc/init
	names := make(map[string]bool)
	for _, m := range mdb.Materials {
		if names[m.Name] {
			return nil, &ConfigError{Material: m.Name, Msg: "material is defined more than once"}
		}
		names[m.Name] = true
		if m.Model == "" {
			m.Model = DefaultModel
		}
		m.Failure, err = failure.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Failure.Init(m.Prms)
		if err != nil {
			return nil, &ConfigError{Material: m.Name, Msg: err.Error()}
		}
	}
	return
}

// Strength returns the tensile and compressive strengths of this material
func (o *Material) Strength() Strength {
	if o.Failure == nil {
		return Strength{}
	}
	T, C := o.Failure.Strength()
	return Strength{T, C}
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// Strengths checks the table against the materials found in the results database and
// returns the strengths of all materials that must be evaluated
//  Note: materials with T = C = 0 are skipped; i.e. they are not in the returned map
func (o MatDb) Strengths(materials []string) (strengths map[string]Strength, err error) {

	// coverage
	if len(o.Materials) != len(materials) {
		return nil, &ConfigError{Msg: io.Sf("the results database has %d materials but %d were given; "+
			"use T = C = 0 to skip a material", len(materials), len(o.Materials))}
	}
	sorted := append([]string{}, materials...)
	sort.Strings(sorted)
	for _, name := range sorted {
		if o.Get(name) == nil {
			return nil, &ConfigError{Material: name, Msg: "strengths are missing; use T = C = 0 to skip this material"}
		}
	}

	// check values
	strengths = make(map[string]Strength)
	for _, m := range o.Materials {
		s := m.Strength()
		if s.Skip() {
			continue
		}
		err = s.Check(m.Name)
		if err != nil {
			return nil, err
		}
		strengths[m.Name] = s
	}
	return
}

// String prints one material
func (o *Material) String() string {
	prms := make([]string, len(o.Prms))
	for i, p := range o.Prms {
		prms[i] = io.Sf("        {\"n\":%q, \"v\":%g}", p.N, p.V)
	}
	return io.Sf("    {\n      \"name\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n      \"prms\"  : [\n%s\n      ]\n    }",
		o.Name, o.Model, o.Extra, strings.Join(prms, ",\n"))
}

// String prints all materials in the format of .mat files
func (o MatDb) String() string {
	mats := make([]string, len(o.Materials))
	for i, m := range o.Materials {
		mats[i] = m.String()
	}
	return io.Sf("{\n  \"materials\" : [\n%s\n  ]\n}", strings.Join(mats, ",\n"))
}
