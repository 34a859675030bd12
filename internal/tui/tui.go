package tui

import (
	"context"

	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/service"
	"github.com/MKhiriev/go-qr-history/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the QR screen until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newQRModel(ctx, t.services.QRService, t.buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
	}
	return err
}
