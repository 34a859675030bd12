package http

import (
	"html/template"

	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/service"
)

type Handler struct {
	services *service.ClientServices
	page     *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		page:     indexTemplate,
		logger:   logger,
	}
}
