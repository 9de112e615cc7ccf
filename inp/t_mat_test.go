// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func matJSON(entries ...string) []byte {
	l := `{"materials":[`
	for i, e := range entries {
		if i > 0 {
			l += ","
		}
		l += e
	}
	return []byte(l + "]}")
}

func matEntry(name string, T, C float64) string {
	return io.Sf(`{"name":%q,"prms":[{"n":"T","v":%g},{"n":"C","v":%g}]}`, name, T, C)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. read materials file")

	mdb, err := ParseMat(matJSON(matEntry("steel", 100, 300), matEntry("glue", 0, 0)))
	if err != nil {
		tst.Errorf("ParseMat failed: %v\n", err)
		return
	}
	io.Pforan("%v\n", mdb)

	steel := mdb.Get("steel")
	if steel == nil {
		tst.Errorf("cannot find steel\n")
		return
	}
	if steel.Model != DefaultModel {
		tst.Errorf("default model must be %q. %q is invalid\n", DefaultModel, steel.Model)
	}
	s := steel.Strength()
	chk.Float64(tst, "T", 1e-17, s.T, 100)
	chk.Float64(tst, "C", 1e-17, s.C, 300)
	if !mdb.Get("glue").Strength().Skip() {
		tst.Errorf("glue must be skipped\n")
	}
	if mdb.Get("wood") != nil {
		tst.Errorf("wood does not exist\n")
	}

	strengths, err := mdb.Strengths([]string{"glue", "steel"})
	if err != nil {
		tst.Errorf("Strengths failed: %v\n", err)
		return
	}
	chk.IntAssert(len(strengths), 1)
	chk.Float64(tst, "steel: T", 1e-17, strengths["steel"].T, 100)
	chk.Float64(tst, "steel: C", 1e-17, strengths["steel"].C, 300)
}

func Test_mat02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat02. invalid materials files")

	for _, b := range [][]byte{
		[]byte(`{"materials":`),
		matJSON(`{"name":"steel","model":"unknown","prms":[]}`),
		matJSON(`{"name":"steel","prms":[{"n":"T","v":100}]}`),
		matJSON(matEntry("steel", 1, 2), matEntry("steel", 1, 2)),
	} {
		_, err := ParseMat(b)
		if err == nil {
			tst.Errorf("ParseMat should have failed with %s\n", b)
			return
		}
		io.Pforan("%v\n", err)
	}
}

func Test_mat03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat03. strengths validation")

	check := func(msg string, dbmats []string, failed bool, entries ...string) {
		mdb, err := ParseMat(matJSON(entries...))
		if err != nil {
			tst.Errorf("%s: ParseMat failed: %v\n", msg, err)
			return
		}
		_, err = mdb.Strengths(dbmats)
		io.Pforan("%s: %v\n", msg, err)
		if !failed {
			if err != nil {
				tst.Errorf("%s: Strengths failed: %v\n", msg, err)
			}
			return
		}
		if err == nil {
			tst.Errorf("%s: Strengths should have failed\n", msg)
			return
		}
		if !errors.Is(err, ErrConfig) {
			tst.Errorf("%s: error must match ErrConfig\n", msg)
		}
		var cerr *ConfigError
		if !errors.As(err, &cerr) {
			tst.Errorf("%s: error must be a *ConfigError\n", msg)
		}
	}

	check("ok         ", []string{"a", "b"}, false, matEntry("a", 1, 2), matEntry("b", 5, 5))
	check("skip all   ", []string{"a"}, false, matEntry("a", 0, 0))
	check("count      ", []string{"a", "b"}, true, matEntry("a", 1, 2))
	check("count      ", []string{"a"}, true, matEntry("a", 1, 2), matEntry("b", 1, 2))
	check("missing    ", []string{"a", "c"}, true, matEntry("a", 1, 2), matEntry("b", 1, 2))
	check("negative T ", []string{"a"}, true, matEntry("a", -1, 2))
	check("negative C ", []string{"a"}, true, matEntry("a", 1, -2))
	check("zero T     ", []string{"a"}, true, matEntry("a", 0, 2))
	check("zero C     ", []string{"a"}, true, matEntry("a", 1, 0))
	check("T > C      ", []string{"a"}, true, matEntry("a", 3, 2))
}

func Test_mat04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat04. error messages")

	mdb, err := ParseMat(matJSON(matEntry("a", 1, 2), matEntry("b", 1, 2)))
	if err != nil {
		tst.Errorf("ParseMat failed: %v\n", err)
		return
	}
	_, err = mdb.Strengths([]string{"a", "steel"})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		tst.Errorf("error must be a *ConfigError\n")
		return
	}
	chk.String(tst, cerr.Material, "steel")
	io.Pforan("%v\n", err)

	err = Strength{T: 3, C: 2}.Check("wood")
	chk.String(tst, err.Error(), `invalid configuration: material "wood": T=3 cannot be greater than C=2`)
}

func Test_mat05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat05. read materials file from disk")

	dir := tst.TempDir()
	b := matJSON(matEntry("steel", 100, 300), matEntry("glue", 0, 0))
	err := os.WriteFile(filepath.Join(dir, "plate.mat"), b, 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v\n", err)
		return
	}

	mdb, err := ReadMat(dir, "plate.mat")
	if err != nil {
		tst.Errorf("ReadMat failed: %v\n", err)
		return
	}
	chk.IntAssert(len(mdb.Materials), 2)
	s := mdb.Get("steel").Strength()
	chk.Float64(tst, "T", 1e-17, s.T, 100)
	chk.Float64(tst, "C", 1e-17, s.C, 300)

	// printed database can be read back
	again, err := ParseMat([]byte(mdb.String()))
	if err != nil {
		tst.Errorf("cannot parse printed materials: %v\n%v\n", err, mdb)
		return
	}
	chk.String(tst, again.String(), mdb.String())

	// missing file
	mdb, err = ReadMat(dir, "nonexistent.mat")
	if err == nil {
		tst.Errorf("ReadMat should have failed with missing file\n")
		return
	}
	if mdb != nil {
		tst.Errorf("materials must be nil on error\n")
	}
	io.Pforan("%v\n", err)

	// invalid contents
	err = os.WriteFile(filepath.Join(dir, "bad.mat"), []byte(`{"materials":[`), 0644)
	if err != nil {
		tst.Errorf("cannot write file: %v\n", err)
		return
	}
	_, err = ReadMat(dir, "bad.mat")
	if err == nil {
		tst.Errorf("ReadMat should have failed with invalid contents\n")
	}
}
