package http

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"persons/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// A graceful Shutdown surfaces as http.ErrServerClosed from echo's Start;
// Serve must report that as a clean stop so the process does not treat its
// own shutdown as a startup failure.
func TestServe_ReturnsCleanlyAfterShutdown(t *testing.T) {
	echoServer := echo.New()
	echoServer.HideBanner = true

	cfg := &config.Config{}
	cfg.HTTP.Port = 0 // bind an ephemeral port

	srv := &httpServer{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		server: echoServer,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(context.Background())
	}()

	require.Eventually(t, func() bool {
		return echoServer.ListenerAddr() != nil
	}, time.Second, 10*time.Millisecond, "server never started listening")

	require.NoError(t, srv.stop(context.Background()))

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
