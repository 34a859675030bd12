package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ConfiguredVersion(t *testing.T) {
	cfg := config.ClientApp{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_FallsBackToBuildVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ClientApp{}, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "0.9.0", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.ClientApp{}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}
