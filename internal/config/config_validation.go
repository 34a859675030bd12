// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

var recoveryLevels = map[string]struct{}{
	"low":     {},
	"medium":  {},
	"high":    {},
	"highest": {},
}

// validate checks the merged [StructuredConfig] after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 || cfg.Render.Timeout <= 0 {
		return ErrInvalidRenderConfigs
	}
	if _, ok := recoveryLevels[strings.ToLower(cfg.Render.RecoveryLevel)]; !ok {
		return fmt.Errorf("%w: unknown recovery level %q", ErrInvalidRenderConfigs, cfg.Render.RecoveryLevel)
	}

	if cfg.App.UserID < 0 || (cfg.App.UserID == 0 && strings.TrimSpace(cfg.App.Token) == "") {
		return ErrInvalidAppConfigs
	}

	var preview NetAddress
	if err := preview.Set(cfg.Preview.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPreviewConfigs, err)
	}

	return nil
}
