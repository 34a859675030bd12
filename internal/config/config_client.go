package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds identity and diagnostics settings of a client process.
type ClientApp struct {
	UserID   int64
	Token    string
	Version  string
	LogLevel string
	LogFile  string
}

// ClientAdapter holds settings of the outbound history endpoint.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientRender holds the QR rendering parameters.
type ClientRender struct {
	Width         int
	Height        int
	RecoveryLevel string
	Timeout       time.Duration
}

// ClientPreview holds settings of the browser front end.
type ClientPreview struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientConfig is the view of [StructuredConfig] consumed by the client
// binaries.
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Render  ClientRender
	Preview ClientPreview
}

// GetClientConfig builds the structured configuration from the environment,
// args and the optional JSON file, and maps it to a [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			UserID:   cfg.App.UserID,
			Token:    strings.TrimSpace(cfg.App.Token),
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Render: ClientRender{
			Width:         cfg.Render.Width,
			Height:        cfg.Render.Height,
			RecoveryLevel: strings.ToLower(cfg.Render.RecoveryLevel),
			Timeout:       cfg.Render.Timeout,
		},
		Preview: ClientPreview{
			HTTPAddress:    cfg.Preview.HTTPAddress,
			RequestTimeout: cfg.Preview.RequestTimeout,
		},
	}
}
