package service

import (
	"fmt"

	"github.com/MKhiriev/go-qr-history/internal/adapter"
	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/display"
	"github.com/MKhiriev/go-qr-history/internal/identity"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/render"
	"github.com/MKhiriev/go-qr-history/models"
)

type ClientServices struct {
	QRService      QRService
	AppInfoService AppInfoService
}

// NewClientServices builds the render pipeline around a fresh display
// container. A configured token both authenticates uploads and supplies
// the user id; otherwise the configured user id is used.
func NewClientServices(cfg *config.ClientConfig, serverAdapter adapter.ServerAdapter, build models.AppBuildInfo, logger *logger.Logger) (*ClientServices, error) {
	renderer, err := render.NewQRRenderer(cfg.Render.RecoveryLevel, logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		QRService:      NewQRService(display.New(), renderer, serverAdapter, NewIdentity(cfg.App, serverAdapter), cfg.Render, logger),
		AppInfoService: appInfo,
	}, nil
}

// NewIdentity picks the identity resolver for app.
func NewIdentity(app config.ClientApp, serverAdapter adapter.ServerAdapter) identity.Resolver {
	if app.Token != "" {
		serverAdapter.SetToken(app.Token)
		return identity.NewToken(app.Token)
	}
	return identity.Static(app.UserID)
}
