package handler

import (
	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/handler/http"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ClientServices, cfg config.ClientPreview, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" || services == nil {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, logger)}, nil
}
