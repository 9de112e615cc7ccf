// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"fmt"
	"time"

	"github.com/fempost/christensen/inp"
	"github.com/fempost/christensen/odb"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "github.com/fempost/christensen/out"

// Source provides the model and the stresses of a results database
type Source interface {
	Steps(ctx context.Context) ([]odb.Step, error)
	Instances(ctx context.Context) ([]string, error)
	Materials(ctx context.Context) ([]string, error)
	Elements(ctx context.Context, instance string) ([]odb.Element, error)
	Stresses(ctx context.Context, instance, step string) ([]odb.StressValue, error)
}

// Sink receives new fields
type Sink interface {
	FieldNames(ctx context.Context, step string) ([]string, error)
	AddField(ctx context.Context, field *odb.FieldOutput, values []odb.FieldValue) error
}

// Summary holds the statistics of one processed step
type Summary struct {
	Step         string // step name
	Field        string // name of the new field
	Points       int    // number of integration points
	Undefined    int    // points with configured material but undefined index (e.g. hydrostatic)
	Unconfigured int    // points whose material is skipped
}

// Runner evaluates the criterion over steps of a results database
type Runner struct {
	Src     Source         // results
	Dst     Sink           // new fields
	Log     zerolog.Logger // logger
	Workers int            // number of steps processed concurrently; 0 means 1
	Base    string         // base name of new fields; empty means "Christensen"
}

// counters
type counters struct {
	points       metric.Int64Counter
	undefined    metric.Int64Counter
	unconfigured metric.Int64Counter
}

func newCounters() (o *counters, err error) {
	m := otel.Meter(instrumentationName)
	o = new(counters)
	o.points, err = m.Int64Counter("christensen.points",
		metric.WithDescription("Integration points evaluated"))
	if err != nil {
		return nil, fmt.Errorf("creating points counter: %w", err)
	}
	o.undefined, err = m.Int64Counter("christensen.undefined",
		metric.WithDescription("Integration points with undefined failure index"))
	if err != nil {
		return nil, fmt.Errorf("creating undefined counter: %w", err)
	}
	o.unconfigured, err = m.Int64Counter("christensen.unconfigured",
		metric.WithDescription("Integration points of skipped materials"))
	if err != nil {
		return nil, fmt.Errorf("creating unconfigured counter: %w", err)
	}
	return
}

// Strengths checks the materials table against the materials of the results database
func (o *Runner) Strengths(ctx context.Context, mdb *inp.MatDb) (map[string]inp.Strength, error) {
	materials, err := o.Src.Materials(ctx)
	if err != nil {
		return nil, err
	}
	return mdb.Strengths(materials)
}

// Run processes steps; an empty instance means the only instance and an empty list of
// steps means all steps. Each step gets its own field
//  strengths -- checked strengths by material name (see inp.MatDb.Strengths);
//               materials not in this map are not evaluated
func (o *Runner) Run(ctx context.Context, instance string, steps []string, strengths map[string]inp.Strength) (sums []Summary, err error) {

	// check strengths
	for name, s := range strengths {
		err = s.Check(name)
		if err != nil {
			return
		}
	}

	// inputs
	instance, err = o.instance(ctx, instance)
	if err != nil {
		return
	}
	steps, err = o.steps(ctx, steps)
	if err != nil {
		return
	}
	elems, err := o.Src.Elements(ctx, instance)
	if err != nil {
		return
	}
	materialOf := MaterialOf(elems)
	cnt, err := newCounters()
	if err != nil {
		return
	}

	// process steps
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	o.Log.Info().Str("instance", instance).Strs("steps", steps).Int("workers", workers).Msg("Calculation is running")
	start := time.Now()
	sums = make([]Summary, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, step := range steps {
		i, step := i, step
		g.Go(func() (e error) {
			sums[i], e = o.runStep(gctx, cnt, instance, step, elems, materialOf, strengths)
			if e != nil {
				return fmt.Errorf("step %q: %w", step, e)
			}
			return
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, err
	}
	o.Log.Info().Int("steps", len(steps)).Dur("elapsed", time.Since(start)).Msg("Finished")
	return
}

// runStep processes one step
func (o *Runner) runStep(ctx context.Context, cnt *counters, instance, step string, elems []odb.Element,
	materialOf map[int]string, strengths map[string]inp.Strength) (sum Summary, err error) {

	// stresses
	samples, err := o.Src.Stresses(ctx, instance, step)
	if err != nil {
		return
	}
	stresses, err := Attribute(elems, samples)
	if err != nil {
		return
	}

	// evaluate
	res := Process(stresses, materialOf, strengths)

	// new field
	existing, err := o.Dst.FieldNames(ctx, step)
	if err != nil {
		return
	}
	base := o.Base
	if base == "" {
		base = "Christensen"
	}
	field := NewField(FieldName(existing, base), res)

	// store
	fo := &odb.FieldOutput{StepName: step, Name: field.Name, InstanceName: instance, Description: field.Description}
	fo.SetLabels(field.Labels[:])
	sum = Summary{Step: step, Field: field.Name, Points: len(res)}
	values := make([]odb.FieldValue, 0, len(res))
	for _, key := range SortedKeys(res) {
		r := res[key]
		if r.Undefined() {
			if _, ok := strengths[materialOf[key.Elem]]; ok {
				sum.Undefined++
			} else {
				sum.Unconfigured++
			}
		}
		values = append(values, odb.NewFieldValue(key.Elem, key.Ip, r.Values()))
	}
	err = o.Dst.AddField(ctx, fo, values)
	if err != nil {
		return
	}

	// metrics and log
	attr := metric.WithAttributes(attribute.String("step", step))
	cnt.points.Add(ctx, int64(sum.Points), attr)
	cnt.undefined.Add(ctx, int64(sum.Undefined), attr)
	cnt.unconfigured.Add(ctx, int64(sum.Unconfigured), attr)
	o.Log.Info().Str("step", step).Str("field", sum.Field).Int("points", sum.Points).
		Int("undefined", sum.Undefined).Int("unconfigured", sum.Unconfigured).Msg("Field added")
	return
}

// instance resolves the instance name
func (o *Runner) instance(ctx context.Context, instance string) (string, error) {
	if instance != "" {
		return instance, nil
	}
	names, err := o.Src.Instances(ctx)
	if err != nil {
		return "", err
	}
	if len(names) != 1 {
		return "", &inp.ConfigError{Msg: fmt.Sprintf("the results database has %d instances; the instance must be given", len(names))}
	}
	return names[0], nil
}

// steps resolves the step names
func (o *Runner) steps(ctx context.Context, selected []string) ([]string, error) {
	all, err := o.Src.Steps(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(all))
	names := make([]string, len(all))
	for i, s := range all {
		known[s.Name] = true
		names[i] = s.Name
	}
	if len(selected) == 0 {
		if len(names) == 0 {
			return nil, &inp.ConfigError{Msg: "the results database has no steps"}
		}
		return names, nil
	}
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if !known[name] {
			return nil, fmt.Errorf("step %q: %w", name, odb.ErrNotFound)
		}
		if seen[name] {
			return nil, &inp.ConfigError{Msg: fmt.Sprintf("step %q is selected more than once", name)}
		}
		seen[name] = true
	}
	return selected, nil
}
