// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file, then completed with defaults and validated.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds identity and diagnostics settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the outbound history endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Render holds QR rendering parameters.
	Render Render `envPrefix:"RENDER_"`

	// Preview holds settings of the browser front end.
	Preview Preview `envPrefix:"PREVIEW_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds values describing who is using the client and how it logs.
type App struct {
	// UserID is the identifier history records are attributed to.
	// Env: APP_USER_ID
	UserID int64 `env:"USER_ID"`

	// Token is a session JWT issued by the auth service. When set, its
	// subject claim is used as the user identifier and it is sent as a
	// bearer token with every upload.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Version is the semantic version of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its logs.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds the location of the history endpoint.
type Adapter struct {
	// HTTPAddress is the base address of the history server, either a full
	// URL or "host:port" (e.g. "localhost:8000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single upload (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Render holds the QR rendering parameters.
type Render struct {
	// Width and Height are the exact pixel size of the rendered surface.
	// Env: RENDER_WIDTH, RENDER_HEIGHT
	Width  int `env:"WIDTH"`
	Height int `env:"HEIGHT"`

	// RecoveryLevel is the QR error correction level:
	// low, medium, high or highest.
	// Env: RENDER_RECOVERY_LEVEL
	RecoveryLevel string `env:"RECOVERY_LEVEL"`

	// Timeout is the wait window for a render to complete before the
	// surface is considered missing.
	// Env: RENDER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Preview holds settings of the browser front end.
type Preview struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: PREVIEW_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: PREVIEW_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Defaults applied after merging all sources.
const (
	DefaultAdapterTimeout  = 15 * time.Second
	DefaultRenderTimeout   = 2 * time.Second
	DefaultRecoveryLevel   = "medium"
	DefaultPreviewAddress  = "localhost:8081"
	DefaultPreviewTimeout  = 30 * time.Second
	defaultRenderDimension = 180
)

// GetStructuredConfig loads, merges and validates the configuration from
// all sources in priority order (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Render.Width == 0 {
		cfg.Render.Width = defaultRenderDimension
	}
	if cfg.Render.Height == 0 {
		cfg.Render.Height = defaultRenderDimension
	}
	if cfg.Render.RecoveryLevel == "" {
		cfg.Render.RecoveryLevel = DefaultRecoveryLevel
	}
	if cfg.Render.Timeout <= 0 {
		cfg.Render.Timeout = DefaultRenderTimeout
	}
	if cfg.Preview.HTTPAddress == "" {
		cfg.Preview.HTTPAddress = DefaultPreviewAddress
	}
	if cfg.Preview.RequestTimeout <= 0 {
		cfg.Preview.RequestTimeout = DefaultPreviewTimeout
	}
}
