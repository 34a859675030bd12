package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-qr-history/internal/adapter"
	"github.com/MKhiriev/go-qr-history/internal/client"
	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/service"
	"github.com/MKhiriev/go-qr-history/internal/tui"
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

	log := logger.NewClientLogger("go-qr-client", "")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.LogFile != "" {
		log = logger.NewClientLogger("go-qr-client", cfg.App.LogFile)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Stringer("build", buildInfo).Msg("starting client")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	services, err := service.NewClientServices(cfg, serverAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
