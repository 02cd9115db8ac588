package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/handler"
	"github.com/MKhiriev/threadboard/internal/logger"
)

type server struct {
	httpServer *httpServer
	workers    BackgroundRunner
	logger     *logger.Logger
}

// NewServer wires the HTTP handlers and the background workers. workers may
// be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundRunner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.httpServer.shutdown()
		err = <-serveErr
	case err = <-serveErr:
		s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
	}

	stop()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")
	return err
}
