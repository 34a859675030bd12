package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var _ Client = (*App)(nil)

type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.QRService == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}

	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run shows the UI until the user quits or the process is signalled, then
// waits for the last upload to finish.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)

	// let the latest upload reach the server unless we are being killed
	if ctx.Err() != nil {
		a.services.QRService.Stop()
	} else {
		a.services.QRService.Wait()
	}
	a.logger.Info().Msg("client stopped")

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
