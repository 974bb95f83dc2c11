// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env, driven
// by the `env` and `envPrefix` tags on [StructuredConfig] and its nested
// types. A failed parse (unconvertible value, missing required variable)
// comes back as a wrapped error.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
