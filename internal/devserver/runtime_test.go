package devserver

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/threadboard/internal/devconfig"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── test plugins ─────────────────────────────────────────────────────────────

type inertPlugin struct{ name string }

func (p inertPlugin) Name() string { return p.name }

// tagPlugin appends its name to the X-Order response header on the way in.
type tagPlugin struct{ name string }

func (p tagPlugin) Name() string { return p.name }

func (p tagPlugin) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("X-Order", p.name)
		next.ServeHTTP(w, r)
	})
}

type routePlugin struct {
	path string
	err  error
}

func (p routePlugin) Name() string { return "routes" }

func (p routePlugin) RegisterRoutes(r chi.Router) error {
	if p.err != nil {
		return p.err
	}
	r.Get(p.path, func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, "hello from "+p.path)
	})
	return nil
}

type startPlugin struct {
	started chan struct{}
	err     error
}

func (p *startPlugin) Name() string { return "starter" }

func (p *startPlugin) Start(ctx context.Context) error {
	close(p.started)
	if p.err != nil {
		return p.err
	}
	<-ctx.Done()
	return nil
}

func factoryOf(p devconfig.Plugin) devconfig.PluginFactory {
	return func() (devconfig.Plugin, error) { return p, nil }
}

func buildConfig(t *testing.T, host string, port int, plugins ...devconfig.Plugin) devconfig.Config {
	t.Helper()
	b := devconfig.NewBuilder().WithServer(host, port)
	for _, p := range plugins {
		b.WithPlugins(factoryOf(p))
	}
	cfg, err := b.Build()
	require.NoError(t, err)
	return cfg
}

// ── assemble ─────────────────────────────────────────────────────────────────

func TestAssemble_MiddlewareAppliedInDeclaredOrder(t *testing.T) {
	cfg := buildConfig(t, "127.0.0.1", 0,
		tagPlugin{name: "first"},
		inertPlugin{name: "inert"},
		tagPlugin{name: "second"},
		tagPlugin{name: "third"},
	)

	handler, starters, err := New(cfg, logger.Nop()).assemble()
	require.NoError(t, err)
	assert.Empty(t, starters)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"first", "second", "third"}, rec.Header().Values("X-Order"))
}

func TestAssemble_RoutesMounted(t *testing.T) {
	cfg := buildConfig(t, "127.0.0.1", 0, routePlugin{path: "/hello"})

	handler, _, err := New(cfg, logger.Nop()).assemble()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/hello", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello from /hello", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestAssemble_NilPlugin(t *testing.T) {
	cfg, err := devconfig.NewBuilder().
		WithPlugins(func() (devconfig.Plugin, error) { return nil, nil }).
		Build()
	require.NoError(t, err)

	_, _, err = New(cfg, logger.Nop()).assemble()
	assert.ErrorIs(t, err, ErrNilPlugin)
}

func TestAssemble_RouteRegistrationError(t *testing.T) {
	errBoom := errors.New("boom")
	cfg := buildConfig(t, "127.0.0.1", 0, routePlugin{err: errBoom})

	_, _, err := New(cfg, logger.Nop()).assemble()
	assert.ErrorIs(t, err, ErrPluginSetup)
	assert.ErrorIs(t, err, errBoom)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestRun_BindFailureOnOccupiedPort(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	port := occupied.Addr().(*net.TCPAddr).Port
	cfg := buildConfig(t, "127.0.0.1", port)

	err = New(cfg, logger.Nop()).Run(context.Background())
	assert.ErrorIs(t, err, ErrBind)
}

func TestRun_BindFailureOnInvalidPort(t *testing.T) {
	for _, port := range []int{-1, 70000} {
		cfg := buildConfig(t, "127.0.0.1", port)

		err := New(cfg, logger.Nop()).Run(context.Background())
		assert.ErrorIs(t, err, ErrBind, "port %d", port)
	}
}

func TestRun_ServesAndStopsOnCancel(t *testing.T) {
	starter := &startPlugin{started: make(chan struct{})}
	cfg := buildConfig(t, "127.0.0.1", 0, routePlugin{path: "/ping"}, starter)
	rt := New(cfg, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- rt.Run(ctx) }()

	select {
	case <-rt.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("runtime never became ready")
	}
	<-starter.started

	port := rt.Addr().(*net.TCPAddr).Port
	resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "hello from /ping", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runtime did not stop")
	}

	assert.ErrorIs(t, rt.Run(context.Background()), ErrAlreadyRun)
}

func TestRun_SecondCallAfterBindFailure(t *testing.T) {
	rt := New(buildConfig(t, "127.0.0.1", -1), logger.Nop())

	assert.ErrorIs(t, rt.Run(context.Background()), ErrBind)
	assert.ErrorIs(t, rt.Run(context.Background()), ErrAlreadyRun)
}

func TestRun_StarterErrorStopsServer(t *testing.T) {
	errStart := errors.New("watcher failed")
	starter := &startPlugin{started: make(chan struct{}), err: errStart}
	rt := New(buildConfig(t, "127.0.0.1", 0, starter), logger.Nop())

	select {
	case err := <-runAsync(rt):
		assert.ErrorIs(t, err, errStart)
	case <-time.After(5 * time.Second):
		t.Fatal("runtime did not stop")
	}
}

func runAsync(rt *Runtime) <-chan error {
	done := make(chan error, 1)
	go func() { done <- rt.Run(context.Background()) }()
	return done
}
