// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.Crypto.ServerKey = "server-secret"
	cfg.App.TokenSignKey = "sign-secret"
	return cfg
}

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Crypto: Crypto{ServerKey: "first"}, App: App{TokenSignKey: "k"}},
		&StructuredConfig{Crypto: Crypto{ServerKey: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.Crypto.ServerKey)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	// untouched defaults survive
	assert.Equal(t, "go-pass-vault", cfg.App.TokenIssuer)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestBuild_ZeroFieldsDoNotOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, validConfig(), cfg)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder().withDefaults()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

// ── precedence ────────────────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	jsonPath := writeTempJSON(t, `{
		"app": {"token_sign_key": "from-json", "token_issuer": "json-issuer"},
		"crypto": {"server_key": "json-key", "public_key": "json-public"},
		"links": {"default_ttl": "1h", "max_ttl": "48h"}
	}`)

	setEnvVars(t, map[string]string{
		"CONFIG":            jsonPath,
		"CRYPTO_SERVER_KEY": "env-key",
		"APP_TOKEN_ISSUER":  "env-issuer",
	})

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--token-issuer", "flag-issuer", "--link-max-ttl", "72h"}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)  // json only
	assert.Equal(t, "json-public", cfg.Crypto.PublicKey) // json only
	assert.Equal(t, "env-key", cfg.Crypto.ServerKey)     // env over json
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)  // flag over env over json
	assert.Equal(t, time.Hour, cfg.Links.DefaultTTL)     // json over default
	assert.Equal(t, 72*time.Hour, cfg.Links.MaxTTL)      // flag over json
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)    // default
}

func TestGetStructuredConfig_ConfigPathFromFlag(t *testing.T) {
	clearEnvVars(t)
	jsonPath := writeTempJSON(t, `{"app": {"token_sign_key": "k"}, "crypto": {"public_key": "p"}}`)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", jsonPath}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)
	assert.Equal(t, "p", cfg.Crypto.PublicKey)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

func TestGetStructuredConfig_MissingJSONFile(t *testing.T) {
	setEnvVars(t, map[string]string{"CONFIG": filepath.Join(t.TempDir(), "absent.json")})

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:   "public key alone is enough",
			mutate: func(c *StructuredConfig) { c.Crypto.ServerKey = ""; c.Crypto.PublicKey = "p" },
		},
		{
			name:    "no keys",
			mutate:  func(c *StructuredConfig) { c.Crypto = Crypto{} },
			wantErr: ErrInvalidCryptoConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(c *StructuredConfig) { c.Storage.Driver = "mongo" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "postgres without dsn",
			mutate:  func(c *StructuredConfig) { c.Storage.Driver = DriverPostgres },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "sqlite with dsn",
			mutate: func(c *StructuredConfig) {
				c.Storage.Driver = DriverSQLite
				c.Storage.DB.DSN = "vault.db"
			},
		},
		{
			name:    "missing sign key",
			mutate:  func(c *StructuredConfig) { c.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero link ttl",
			mutate:  func(c *StructuredConfig) { c.Links.DefaultTTL = 0 },
			wantErr: ErrInvalidLinksConfigs,
		},
		{
			name:    "default ttl above max",
			mutate:  func(c *StructuredConfig) { c.Links.DefaultTTL = c.Links.MaxTTL + time.Second },
			wantErr: ErrInvalidLinksConfigs,
		},
		{
			name:    "zero passphrase check limit",
			mutate:  func(c *StructuredConfig) { c.Links.MaxConcurrentVerifies = 0 },
			wantErr: ErrInvalidLinksConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
