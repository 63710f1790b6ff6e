// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, CRYPTO_, STORAGE_, LINKS_ and SERVER_
// variables declared by the `env`/`envPrefix` tags of [StructuredConfig].
// Unset variables leave fields zero so the layer does not override others.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
