package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/threadboard/internal/config"
	"github.com/MKhiriev/threadboard/internal/handler"
	handlerhttp "github.com/MKhiriev/threadboard/internal/handler/http"
	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type runnerFunc func(ctx context.Context)

func (f runnerFunc) Run(ctx context.Context) { f(ctx) }

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func testHandlers() *handler.Handlers {
	return &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
}

func TestNewServer_NoHTTP(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(testHandlers(), nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_Run_BindFailure(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	srv, err := NewServer(testHandlers(), nil, config.Server{HTTPAddress: occupied.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, srv.Run(context.Background()), ErrListen)
}

func TestServer_Run_ServesUntilCancelled(t *testing.T) {
	addr := freeAddress(t)

	var workerStopped atomic.Bool
	workers := runnerFunc(func(ctx context.Context) {
		<-ctx.Done()
		workerStopped.Store(true)
	})

	srv, err := NewServer(testHandlers(), workers, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/api/unknown")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, workerStopped.Load())
}
