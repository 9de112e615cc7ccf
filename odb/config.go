// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package odb

import "fmt"

// drivers
const (
	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the connection settings of a results database
type Config struct {
	Driver   string `json:"driver" mapstructure:"driver"`     // "sqlite" or "postgres"
	Path     string `json:"path" mapstructure:"path"`         // sqlite file; empty means in memory
	Host     string `json:"host" mapstructure:"host"`         // postgres host
	Port     string `json:"port" mapstructure:"port"`         // postgres port
	Username string `json:"username" mapstructure:"username"` // postgres user
	Password string `json:"password" mapstructure:"password"` // postgres password
	Database string `json:"database" mapstructure:"database"` // postgres database name
}

// DSN returns the postgres data source name
func (o Config) DSN() string {
	return fmt.Sprintf(`host=%s port=%s user=%s password=%s dbname=%s sslmode=disable`,
		o.Host, o.Port, o.Username, o.Password, o.Database)
}
