package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/MKhiriev/threadboard/internal/devserver"
	"github.com/MKhiriev/threadboard/internal/devserver/plugins/framework"
	"github.com/MKhiriev/threadboard/internal/devserver/plugins/livereload"
	"github.com/MKhiriev/threadboard/internal/devserver/plugins/metrics"
	"github.com/MKhiriev/threadboard/internal/logger"
)

func main() {
	log := logger.NewConsoleLogger("devserver")

	devCfg, err := config.GetDevConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(devCfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	var extra []devconfig.PluginFactory
	if devCfg.LiveReload {
		extra = append(extra, livereload.Factory(livereload.Options{WatchDir: devCfg.WatchDir}, log))
	}
	if devCfg.Metrics {
		extra = append(extra, metrics.Factory())
	}

	cfg, err := devconfig.Default(
		framework.Factory(framework.Options{
			ClientDir: devCfg.ClientDir,
			APITarget: devCfg.APITarget,
		}, log),
		extra...,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error building dev server config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = devserver.New(cfg, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dev server failed")
	}
}
