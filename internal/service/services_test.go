package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/identity"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/mock"
	"github.com/MKhiriev/go-qr-history/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testClientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:    config.ClientApp{UserID: 7, Version: "1.0.0"},
		Render: config.ClientRender{Width: 180, Height: 180, RecoveryLevel: "medium", Timeout: time.Second},
	}
}

func TestNewClientServices_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	services, err := NewClientServices(testClientConfig(), serverAdapter, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.QRService)
	require.NotNil(t, services.QRService.Container())
	assert.False(t, services.QRService.Container().Visible())
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewClientServices_UnknownRecoveryLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testClientConfig()
	cfg.Render.RecoveryLevel = "extreme"

	_, err := NewClientServices(cfg, mock.NewMockServerAdapter(ctrl), models.AppBuildInfo{}, logger.Nop())

	require.Error(t, err)
}

func TestNewIdentity_StaticUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	// no SetToken expected

	resolver := NewIdentity(config.ClientApp{UserID: 7}, mock.NewMockServerAdapter(ctrl))

	id, err := resolver.UserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestNewIdentity_TokenWins(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "99",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().SetToken(raw)

	resolver := NewIdentity(config.ClientApp{UserID: 7, Token: raw}, serverAdapter)

	require.IsType(t, &identity.Token{}, resolver)
	id, err := resolver.UserID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
}
