package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/piresc/salesboard/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGracefulServer(t *testing.T) {
	tests := []struct {
		name             string
		config           models.ServerConfig
		expectedAddr     string
		expectedShutdown time.Duration
	}{
		{
			name:             "Configured timeouts",
			config:           models.ServerConfig{Port: 3001, ReadTimeout: 5, WriteTimeout: 10, ShutdownTimeout: 7},
			expectedAddr:     ":3001",
			expectedShutdown: 7 * time.Second,
		},
		{
			name:             "Default shutdown timeout",
			config:           models.ServerConfig{Host: "127.0.0.1", Port: 9090},
			expectedAddr:     "127.0.0.1:9090",
			expectedShutdown: 30 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			gs := NewGracefulServer(e, logger.NewNopLogger(), tt.config)

			require.NotNil(t, gs)
			assert.Equal(t, tt.expectedAddr, gs.addr)
			assert.Equal(t, tt.expectedShutdown, gs.shutdownTimeout)
			if tt.config.ReadTimeout > 0 {
				assert.Equal(t, time.Duration(tt.config.ReadTimeout)*time.Second, e.Server.ReadTimeout)
			}
		})
	}
}

func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port, ShutdownTimeout: 2})

	cleaned := false
	gs.OnShutdown(func(ctx context.Context) error {
		cleaned = true
		return nil
	})

	go func() {
		_ = e.Start(gs.addr)
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/ping", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	assert.NoError(t, gs.Shutdown())
	assert.True(t, cleaned)

	_, err := http.Get(url)
	assert.Error(t, err)
}

func TestShutdownManager_Register(t *testing.T) {
	t.Run("Functions run in registration order", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		var callOrder []int

		for i := 0; i < 5; i++ {
			index := i
			sm.Register(func(ctx context.Context) error {
				callOrder = append(callOrder, index)
				return nil
			})
		}

		err := sm.Shutdown(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4}, callOrder)
	})

	t.Run("Nil function is ignored", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())

		assert.NotPanics(t, func() {
			sm.Register(nil)
		})
		assert.NoError(t, sm.Shutdown(context.Background()))
	})

	t.Run("Failure does not stop remaining functions", func(t *testing.T) {
		sm := NewShutdownManager(logger.NewNopLogger())
		boom := errors.New("close failed")
		secondCalled := false

		sm.Register(func(ctx context.Context) error { return boom })
		sm.Register(func(ctx context.Context) error {
			secondCalled = true
			return nil
		})

		err := sm.Shutdown(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.True(t, secondCalled)
	})
}
