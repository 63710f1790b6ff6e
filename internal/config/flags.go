// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Driver names a storage backend. It implements [pflag.Value] so an unknown
// driver is rejected while the command line is parsed.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
	DriverMemory   Driver = "memory"
)

// IsValid reports whether d is a supported backend.
func (d Driver) IsValid() bool {
	switch d {
	case DriverPostgres, DriverSQLite, DriverMemory:
		return true
	}
	return false
}

// String implements [pflag.Value].
func (d *Driver) String() string {
	return string(*d)
}

// Set implements [pflag.Value].
func (d *Driver) Set(s string) error {
	candidate := Driver(s)
	if !candidate.IsValid() {
		return fmt.Errorf("unknown storage driver %q (want postgres, sqlite or memory)", s)
	}
	*d = candidate
	return nil
}

// Type implements [pflag.Value].
func (d *Driver) Type() string {
	return "driver"
}

// Flags holds the destinations of the configuration flags bound to a
// [pflag.FlagSet].
//
// Flags:
//
//	-c/--config            JSON config file path
//	--driver               storage driver: postgres, sqlite, memory
//	-d/--dsn               database DSN
//	--max-open-conns       database pool size
//	--server-key           server-only default encryption key
//	--public-key           restricted default encryption key
//	--token-sign-key       token signing key
//	--token-issuer         token issuer name
//	--token-duration       token lifetime (e.g. "1h", "30m")
//	--link-default-ttl     default collection link lifetime
//	--link-max-ttl         maximum collection link lifetime
//	--log-level            log level (debug, info, warn, error)
//	-a/--address           HTTP listen address
//	--request-timeout      per-request timeout
//	--shutdown-timeout     graceful shutdown bound
type Flags struct {
	jsonConfigPath string
	driver         Driver
	databaseDSN    string
	maxOpenConns   int
	serverKey      string
	publicKey      string
	tokenSignKey   string
	tokenIssuer    string
	tokenDuration  time.Duration
	linkDefaultTTL time.Duration
	linkMaxTTL     time.Duration
	linkVerifies   int
	logLevel       string

	httpAddress     string
	requestTimeout  time.Duration
	shutdownTimeout time.Duration
}

func bindFlags(fs *pflag.FlagSet) *Flags {
	f := new(Flags)

	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.Var(&f.driver, "driver", "Storage driver: postgres, sqlite or memory")
	fs.StringVarP(&f.databaseDSN, "dsn", "d", "", "Database DSN")
	fs.IntVar(&f.maxOpenConns, "max-open-conns", 0, "Database connection pool size")
	fs.StringVar(&f.serverKey, "server-key", "", "Server-only default encryption key")
	fs.StringVar(&f.publicKey, "public-key", "", "Restricted default encryption key")
	fs.StringVar(&f.tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&f.tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&f.tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&f.linkDefaultTTL, "link-default-ttl", 0, "Default collection link lifetime")
	fs.DurationVar(&f.linkMaxTTL, "link-max-ttl", 0, "Maximum collection link lifetime")
	fs.IntVar(&f.linkVerifies, "link-max-verifies", 0, "Concurrent link passphrase checks")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVarP(&f.httpAddress, "address", "a", "", "HTTP listen address (host:port)")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 0, "Per-request timeout (e.g., 30s)")
	fs.DurationVar(&f.shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")

	return f
}

// config converts the parsed flag values into a configuration layer.
// Unset flags stay zero and therefore do not override lower layers.
func (f *Flags) config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  f.tokenSignKey,
			TokenIssuer:   f.tokenIssuer,
			TokenDuration: f.tokenDuration,
			LogLevel:      f.logLevel,
		},
		Crypto: Crypto{
			ServerKey: f.serverKey,
			PublicKey: f.publicKey,
		},
		Storage: Storage{
			Driver: f.driver,
			DB: DB{
				DSN:          f.databaseDSN,
				MaxOpenConns: f.maxOpenConns,
			},
		},
		Links: Links{
			DefaultTTL:            f.linkDefaultTTL,
			MaxTTL:                f.linkMaxTTL,
			MaxConcurrentVerifies: f.linkVerifies,
		},
		Server: Server{
			HTTPAddress:     f.httpAddress,
			RequestTimeout:  f.requestTimeout,
			ShutdownTimeout: f.shutdownTimeout,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
