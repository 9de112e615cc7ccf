// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/fempost/christensen/odb"
	"github.com/spf13/viper"
)

// Config holds the settings of one post-processing run
type Config struct {
	Db       odb.Config `json:"db" mapstructure:"db"`             // result database
	Instance string     `json:"instance" mapstructure:"instance"` // part instance; empty means the only one
	Steps    []string   `json:"steps" mapstructure:"steps"`       // steps to process; empty means all steps
	Field    string     `json:"field" mapstructure:"field"`       // base name of the output field
	MatFile  string     `json:"matfile" mapstructure:"matfile"`   // materials file; relative to the config file
	Workers  int        `json:"workers" mapstructure:"workers"`   // number of steps processed concurrently
	LogLevel string     `json:"logLevel" mapstructure:"logLevel"` // zerolog level

	// derived
	Dir string `json:"-" mapstructure:"-"` // directory of the config file
}

// LoadConfig reads a JSON run file. Values can be overridden by CHRISTENSEN_* environment
// variables; e.g. CHRISTENSEN_DB_PATH
func LoadConfig(path string) (cfg *Config, err error) {

	v := viper.New()
	v.SetDefault("db.driver", odb.DriverSqlite)
	v.SetDefault("db.path", "")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.username", "postgres")
	v.SetDefault("db.password", "postgres")
	v.SetDefault("db.database", "fem")
	v.SetDefault("instance", "")
	v.SetDefault("steps", []string{})
	v.SetDefault("field", "Christensen")
	v.SetDefault("matfile", "")
	v.SetDefault("workers", 1)
	v.SetDefault("logLevel", "info")

	v.SetEnvPrefix("CHRISTENSEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(path)
	v.SetConfigType("json")
	err = v.ReadInConfig()
	if err != nil {
		return nil, chk.Err("error reading config file: %v", err)
	}

	cfg = new(Config)
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, chk.Err("cannot decode config file %q: %v", path, err)
	}
	cfg.Dir = filepath.Dir(path)

	// check
	if cfg.MatFile == "" {
		return nil, &ConfigError{Msg: "matfile must be given"}
	}
	if cfg.Field == "" {
		return nil, &ConfigError{Msg: "field name cannot be empty"}
	}
	if cfg.Workers < 1 {
		return nil, &ConfigError{Msg: "workers must be at least 1"}
	}
	if !filepath.IsAbs(cfg.MatFile) {
		cfg.MatFile = filepath.Join(cfg.Dir, cfg.MatFile)
	}
	return
}

// ReadMat reads the materials file referenced by this configuration
func (o *Config) ReadMat() (*MatDb, error) {
	return ReadMat(filepath.Dir(o.MatFile), filepath.Base(o.MatFile))
}
