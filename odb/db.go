// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package odb implements the results database read by the post-processor and
// extended with new field outputs
package odb

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when an instance, step, element or field does not exist
var ErrNotFound = errors.New("not found")

// DB is a results database
type DB struct {
	Gorm   *gorm.DB       // connection
	Driver string         // driver name
	Log    zerolog.Logger // logger
}

// memory databases opened so far; each Open with an empty path gets its own
var nmemory int64

// Open connects to a results database and migrates the schema
func Open(cfg Config, log zerolog.Logger) (o *DB, err error) {
	o = &DB{Driver: cfg.Driver, Log: log}
	gcfg := &gorm.Config{
		SkipDefaultTransaction: true,
		CreateBatchSize:        2000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}
	switch cfg.Driver {
	case DriverSqlite, "":
		o.Driver = DriverSqlite
		dsn := cfg.Path
		if dsn == "" {
			dsn = fmt.Sprintf("file:odb%d?mode=memory&cache=shared", atomic.AddInt64(&nmemory, 1))
		}
		o.Gorm, err = gorm.Open(sqlite.Open(dsn), gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %q: %w", dsn, err)
		}
		sqldb, err := o.Gorm.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqldb.SetMaxOpenConns(1) // sqlite has a single writer
		o.Log.Info().Str("dsn", dsn).Msg("Using SQLite results database")
	case DriverPostgres:
		o.Gorm, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.DSN(),
			PreferSimpleProtocol: true,
		}), gcfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres at %s:%s: %w", cfg.Host, cfg.Port, err)
		}
		o.Log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("Connected to Postgres results database")
	default:
		return nil, fmt.Errorf("database driver %q is not available. use %q or %q", cfg.Driver, DriverSqlite, DriverPostgres)
	}

	o.Log.Debug().Msg("Migrating schema")
	err = o.Gorm.AutoMigrate(Models...)
	if err != nil {
		o.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return
}

// Close closes the connection
func (o *DB) Close() error {
	sqldb, err := o.Gorm.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}

// source ////////////////////////////////////////////////////////////////////////////////////////

// Steps returns all steps sorted by their index
func (o *DB) Steps(ctx context.Context) (steps []Step, err error) {
	err = o.Gorm.WithContext(ctx).Order("idx").Find(&steps).Error
	return
}

// Instances returns the names of all instances
func (o *DB) Instances(ctx context.Context) (names []string, err error) {
	err = o.Gorm.WithContext(ctx).Model(&Instance{}).Order("name").Pluck("name", &names).Error
	return
}

// Materials returns the names of all materials
func (o *DB) Materials(ctx context.Context) (names []string, err error) {
	err = o.Gorm.WithContext(ctx).Model(&Material{}).Order("name").Pluck("name", &names).Error
	return
}

// Elements returns the elements of an instance sorted by label, with their material resolved
//  Note: elements whose section is unknown have an empty material
func (o *DB) Elements(ctx context.Context, instance string) (elems []Element, err error) {
	db := o.Gorm.WithContext(ctx)
	err = o.exists(db, &Instance{}, instance)
	if err != nil {
		return nil, fmt.Errorf("instance %q: %w", instance, err)
	}
	var sections []Section
	err = db.Find(&sections).Error
	if err != nil {
		return
	}
	materialOf := make(map[string]string)
	for _, s := range sections {
		materialOf[s.Name] = s.Material
	}
	err = db.Where("instance_name = ?", instance).Order("label").Find(&elems).Error
	if err != nil {
		return
	}
	for i := range elems {
		elems[i].Material = materialOf[elems[i].SectionName]
	}
	return
}

// Stresses returns the stresses of the last frame of a step sorted by element label and
// integration point
func (o *DB) Stresses(ctx context.Context, instance, step string) (values []StressValue, err error) {
	db := o.Gorm.WithContext(ctx)
	err = o.exists(db, &Step{}, step)
	if err != nil {
		return nil, fmt.Errorf("step %q: %w", step, err)
	}
	err = db.Where("step_name = ? AND instance_name = ?", step, instance).Order("element_label").Order("ip").Find(&values).Error
	return
}

// sink //////////////////////////////////////////////////////////////////////////////////////////

// FieldNames returns the names of all fields of a step
func (o *DB) FieldNames(ctx context.Context, step string) (names []string, err error) {
	err = o.Gorm.WithContext(ctx).Model(&FieldOutput{}).Where("step_name = ?", step).Order("name").Pluck("name", &names).Error
	return
}

// AddField stores a new field and its values in one transaction
func (o *DB) AddField(ctx context.Context, field *FieldOutput, values []FieldValue) error {
	return o.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := o.exists(tx, &Step{}, field.StepName)
		if err != nil {
			return fmt.Errorf("step %q: %w", field.StepName, err)
		}
		err = tx.Create(field).Error
		if err != nil {
			return fmt.Errorf("cannot create field %q: %w", field.Name, err)
		}
		for i := range values {
			values[i].FieldOutputID = field.ID
		}
		if len(values) > 0 {
			err = tx.CreateInBatches(values, 2000).Error
			if err != nil {
				return fmt.Errorf("cannot store values of field %q: %w", field.Name, err)
			}
		}
		o.Log.Debug().Str("step", field.StepName).Str("field", field.Name).Int("values", len(values)).Msg("Field stored")
		return nil
	})
}

// Field reads a field and its values sorted by element label and integration point
func (o *DB) Field(ctx context.Context, step, name string) (field *FieldOutput, values []FieldValue, err error) {
	db := o.Gorm.WithContext(ctx)
	field = new(FieldOutput)
	err = db.Where("step_name = ? AND name = ?", step, name).Take(field).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("field %q of step %q: %w", name, step, ErrNotFound)
	}
	if err != nil {
		return nil, nil, err
	}
	err = db.Where("field_output_id = ?", field.ID).Order("element_label").Order("ip").Find(&values).Error
	return
}

// builders //////////////////////////////////////////////////////////////////////////////////////

// AddStep adds a step after the existing ones
func (o *DB) AddStep(ctx context.Context, name string) (step *Step, err error) {
	db := o.Gorm.WithContext(ctx)
	var n int64
	err = db.Model(&Step{}).Count(&n).Error
	if err != nil {
		return
	}
	step = &Step{Name: name, Idx: int(n)}
	err = db.Create(step).Error
	return
}

// AddSection adds a section and its material
func (o *DB) AddSection(ctx context.Context, name, material string) error {
	db := o.Gorm.WithContext(ctx)
	err := db.Where(Material{Name: material}).FirstOrCreate(&Material{}).Error
	if err != nil {
		return err
	}
	return db.Create(&Section{Name: name, Material: material}).Error
}

// AddMaterial adds a material that is not assigned to any section
func (o *DB) AddMaterial(ctx context.Context, name string) error {
	return o.Gorm.WithContext(ctx).Where(Material{Name: name}).FirstOrCreate(&Material{}).Error
}

// AddElements adds elements to an instance; the instance is created if needed
func (o *DB) AddElements(ctx context.Context, instance, section string, labels ...int) error {
	db := o.Gorm.WithContext(ctx)
	err := db.Where(Instance{Name: instance}).FirstOrCreate(&Instance{}).Error
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return nil
	}
	elems := make([]Element, len(labels))
	for i, l := range labels {
		elems[i] = Element{InstanceName: instance, Label: l, SectionName: section}
	}
	return db.Create(&elems).Error
}

// AddStresses stores stresses of the last frame of a step
func (o *DB) AddStresses(ctx context.Context, values []StressValue) error {
	if len(values) == 0 {
		return nil
	}
	return o.Gorm.WithContext(ctx).CreateInBatches(values, 2000).Error
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

// exists checks whether a named row exists
func (o *DB) exists(db *gorm.DB, model interface{}, name string) error {
	var n int64
	err := db.Model(model).Where("name = ?", name).Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
