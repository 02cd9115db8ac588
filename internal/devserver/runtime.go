package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/threadboard/internal/devconfig"
	handlerhttp "github.com/MKhiriev/threadboard/internal/handler/http"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Runtime serves one devconfig.Config.
type Runtime struct {
	cfg    devconfig.Config
	logger *logger.Logger

	ran   atomic.Bool
	ready chan struct{}
	mu    sync.Mutex
	addr  net.Addr
}

// New returns a Runtime for cfg. The configuration is read once, when Run
// starts.
func New(cfg devconfig.Config, log *logger.Logger) *Runtime {
	return &Runtime{
		cfg:    cfg,
		logger: log,
		ready:  make(chan struct{}),
	}
}

// Ready is closed once the listener is bound.
func (rt *Runtime) Ready() <-chan struct{} {
	return rt.ready
}

// Addr is the bound address, nil before Ready is closed.
func (rt *Runtime) Addr() net.Addr {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.addr
}

// Run applies the plugins, binds the configured address and serves until ctx
// is cancelled or a plugin's Start fails. Bind failures wrap ErrBind.
//
// A Runtime runs once; later calls return ErrAlreadyRun.
func (rt *Runtime) Run(ctx context.Context) error {
	if !rt.ran.CompareAndSwap(false, true) {
		return ErrAlreadyRun
	}

	handler, starters, err := rt.assemble()
	if err != nil {
		return err
	}

	address := rt.cfg.Server().Address()
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBind, address, err)
	}

	rt.mu.Lock()
	rt.addr = ln.Addr()
	rt.mu.Unlock()
	close(rt.ready)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, s := range starters {
		g.Go(func() error {
			return s.Start(gctx)
		})
	}

	g.Go(func() error {
		rt.logger.Info().
			Str("address", ln.Addr().String()).
			Strs("plugins", rt.cfg.PluginNames()).
			Msg("dev server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("dev server: serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			rt.logger.Err(err).Msg("dev server shutdown")
		}
		return nil
	})

	err = g.Wait()
	rt.logger.Info().Msg("dev server stopped")
	return err
}

// assemble applies the plugins in order and returns the final handler chain
// together with the plugins that have background work.
func (rt *Runtime) assemble() (http.Handler, []Starter, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	var (
		wrappers []Middleware
		starters []Starter
	)

	for i, p := range rt.cfg.Plugins() {
		if p == nil {
			return nil, nil, fmt.Errorf("%w at position %d", ErrNilPlugin, i)
		}

		log := rt.logger.With().Str("plugin", p.Name()).Logger()
		applied := false

		if rr, ok := p.(RouteRegistrar); ok {
			if err := rr.RegisterRoutes(router); err != nil {
				return nil, nil, fmt.Errorf("%w: %s: %w", ErrPluginSetup, p.Name(), err)
			}
			applied = true
		}
		if mw, ok := p.(Middleware); ok {
			wrappers = append(wrappers, mw)
			applied = true
		}
		if s, ok := p.(Starter); ok {
			starters = append(starters, s)
			applied = true
		}

		if applied {
			log.Debug().Int("position", i).Msg("plugin applied")
		} else {
			log.Warn().Int("position", i).Msg("plugin is inert")
		}
	}

	var handler http.Handler = router
	for _, mw := range slices.Backward(wrappers) {
		handler = mw.Wrap(handler)
	}

	handler = handlerhttp.AccessLog(handler)
	handler = handlerhttp.TraceID(rt.logger)(handler)

	return handler, starters, nil
}
