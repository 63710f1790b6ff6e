// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.ServerKey == "" && cfg.Crypto.PublicKey == "" {
		return fmt.Errorf("%w: no default encryption key", ErrInvalidCryptoConfigs)
	}

	if !cfg.Storage.Driver.IsValid() {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != DriverMemory && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: driver %s needs a DSN", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings incomplete", ErrInvalidAppConfigs)
	}

	if cfg.Links.DefaultTTL <= 0 || cfg.Links.MaxTTL <= 0 {
		return fmt.Errorf("%w: lifetimes must be positive", ErrInvalidLinksConfigs)
	}
	if cfg.Links.DefaultTTL > cfg.Links.MaxTTL {
		return fmt.Errorf("%w: default lifetime exceeds maximum", ErrInvalidLinksConfigs)
	}
	if cfg.Links.MaxConcurrentVerifies < 1 {
		return fmt.Errorf("%w: passphrase check limit must be positive", ErrInvalidLinksConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}
