package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/salesboard/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		panicValue interface{}
	}{
		{name: "string panic", panicValue: "test panic message"},
		{name: "error panic", panicValue: errors.New("test error panic")},
		{name: "int panic", panicValue: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zl, logs := newObservedLogger()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			req.Header.Set(echo.HeaderXRequestID, "req-123")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			err := handler(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "Panic recovered during request processing", entry.Message)
			assert.Equal(t, "req-123", entry.ContextMap()["request_id"])
			assert.Contains(t, entry.ContextMap()["stack_trace"], "runtime/debug.Stack")
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	zl, logs := newObservedLogger()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(PanicRecoveryConfig{})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Keeps incoming request ID", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderXRequestID, "incoming")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := RequestIDMiddleware()(func(c echo.Context) error { return nil })(c)

		assert.NoError(t, err)
		assert.Equal(t, "incoming", rec.Header().Get(echo.HeaderXRequestID))
		assert.Equal(t, "incoming", c.Get("request_id"))
	})

	t.Run("Generates request ID", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		err := RequestIDMiddleware()(func(c echo.Context) error { return nil })(c)

		assert.NoError(t, err)
		assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
	})
}

func TestNewRelicMiddleware_NilAppPassThrough(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	called := false
	err := NewRelicMiddleware(nil)(func(c echo.Context) error {
		called = true
		AddAttribute(c, "k", "v")
		NoticeError(c, errors.New("ignored"))
		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}
