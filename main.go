// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/fempost/christensen/inp"
	"github.com/fempost/christensen/odb"
	"github.com/fempost/christensen/out"
	"github.com/rs/zerolog"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nChristensen -- failure index of finite element results\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")
		io.Pf("%-28s = %v\n", "run file", fnamepath)
	}

	// configuration
	cfg, err := inp.LoadConfig(fnamepath)
	if err != nil {
		chk.Panic("cannot load run file:\n%v", err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		chk.Panic("invalid log level %q:\n%v", cfg.LogLevel, err)
	}
	log = log.Level(level)
	if verbose {
		io.Pf("%-28s = %v\n", "materials file", cfg.MatFile)
		io.Pf("%-28s = %v\n", "database driver", cfg.Db.Driver)
		io.Pf("%-28s = %q\n", "instance", cfg.Instance)
		io.Pf("%-28s = %v\n", "steps", strings.Join(cfg.Steps, ", "))
		io.Pf("%-28s = %v\n", "field", cfg.Field)
		io.Pf("%-28s = %v\n\n", "workers", cfg.Workers)
	}

	// materials
	mdb, err := cfg.ReadMat()
	if err != nil {
		chk.Panic("cannot read materials file:\n%v", err)
	}

	// results database
	db, err := odb.Open(cfg.Db, log)
	if err != nil {
		chk.Panic("cannot open results database:\n%v", err)
	}
	defer db.Close()

	// run
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	runner := &out.Runner{Src: db, Dst: db, Log: log, Workers: cfg.Workers, Base: cfg.Field}
	strengths, err := runner.Strengths(ctx, mdb)
	if err != nil {
		chk.Panic("materials file does not match the results database:\n%v", err)
	}
	sums, err := runner.Run(ctx, cfg.Instance, cfg.Steps, strengths)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// summary
	if verbose {
		io.Pf("%-12s %-16s %10s %10s %13s\n", "step", "field", "points", "undefined", "unconfigured")
		for _, s := range sums {
			io.Pf("%-12s %-16s %10d %10d %13d\n", s.Step, s.Field, s.Points, s.Undefined, s.Unconfigured)
		}
	}
}
