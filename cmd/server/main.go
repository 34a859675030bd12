package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-qr-history/internal/adapter"
	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/handler"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/server"
	"github.com/MKhiriev/go-qr-history/internal/service"
	"github.com/MKhiriev/go-qr-history/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).WithDefaults()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-qr-preview")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().
		Stringer("build", buildInfo).
		Str("adapter", cfg.Adapter.HTTPAddress).
		Str("preview", cfg.Preview.HTTPAddress).
		Int("width", cfg.Render.Width).
		Int("height", cfg.Render.Height).
		Msg("received configs")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services, err := service.NewClientServices(cfg, serverAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}
	defer services.QRService.Stop()

	handlers, err := handler.NewHandlers(services, cfg.Preview, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Preview, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
