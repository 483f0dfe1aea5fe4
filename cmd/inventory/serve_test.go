package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deppfellow/inventory-api/internal/config"
	"github.com/deppfellow/inventory-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLifecycle struct {
	startErr    error
	shutdownErr error
	block       chan struct{}
	shutdowns   atomic.Int32
}

func (f *fakeLifecycle) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	<-f.block
	return http.ErrServerClosed
}

func (f *fakeLifecycle) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	if f.block != nil {
		close(f.block)
	}
	return f.shutdownErr
}

func TestServeUntilDoneReturnsStartError(t *testing.T) {
	bindErr := errors.New("listen tcp :8080: bind: address already in use")
	srv := &fakeLifecycle{startErr: bindErr}

	err := serveUntilDone(context.Background(), srv)

	require.Error(t, err)
	assert.ErrorIs(t, err, bindErr)
	assert.Equal(t, int32(1), srv.shutdowns.Load())
}

func TestServeUntilDoneStopsOnCancel(t *testing.T) {
	srv := &fakeLifecycle{block: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, serveUntilDone(ctx, srv))
	assert.Equal(t, int32(1), srv.shutdowns.Load())
}

func TestServeUntilDoneReportsShutdownError(t *testing.T) {
	shutdownErr := errors.New("drain timeout")
	srv := &fakeLifecycle{block: make(chan struct{}), shutdownErr: shutdownErr}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, serveUntilDone(ctx, srv), shutdownErr)
}

func TestServeUntilDoneWithPortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	logger := zerolog.Nop()
	srv := &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{Port: port, ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1},
		},
		Logger: &logger,
	}
	srv.SetupHTTPServer(http.NotFoundHandler())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = serveUntilDone(ctx, srv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server stopped unexpectedly")
}
