// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriver_Set(t *testing.T) {
	tests := []struct {
		input       string
		expectError bool
	}{
		{input: "postgres"},
		{input: "sqlite"},
		{input: "memory"},
		{input: "mysql", expectError: true},
		{input: "", expectError: true},
		{input: "Postgres", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Driver
			err := d.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, Driver(""), d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
			assert.Equal(t, "driver", d.Type())
		})
	}
}

func TestBindFlags_AllFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)

	err := fs.Parse([]string{
		"--config", "/etc/vault.json",
		"--driver", "sqlite",
		"-d", "vault.db",
		"--max-open-conns", "3",
		"--server-key", "srv",
		"--public-key", "pub",
		"--token-sign-key", "sign",
		"--token-issuer", "issuer",
		"--token-duration", "30m",
		"--link-default-ttl", "2h",
		"--link-max-ttl", "24h",
		"--log-level", "warn",
		"-a", ":9090",
		"--request-timeout", "20s",
		"--shutdown-timeout", "3s",
	})
	require.NoError(t, err)

	cfg := flags.config()
	assert.Equal(t, &StructuredConfig{
		App: App{
			TokenSignKey:  "sign",
			TokenIssuer:   "issuer",
			TokenDuration: 30 * time.Minute,
			LogLevel:      "warn",
		},
		Crypto:  Crypto{ServerKey: "srv", PublicKey: "pub"},
		Storage: Storage{Driver: DriverSQLite, DB: DB{DSN: "vault.db", MaxOpenConns: 3}},
		Links:   Links{DefaultTTL: 2 * time.Hour, MaxTTL: 24 * time.Hour},
		Server:  Server{HTTPAddress: ":9090", RequestTimeout: 20 * time.Second, ShutdownTimeout: 3 * time.Second},

		JSONFilePath: "/etc/vault.json",
	}, cfg)
}

func TestBindFlags_Unset(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, &StructuredConfig{}, flags.config())
}

func TestBindFlags_RejectsUnknownDriver(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"--driver", "mongo"})
	require.Error(t, err)
}
