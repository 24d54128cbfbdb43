package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*logger.ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger.ZapLogger{Logger: zap.New(core)}, logs
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	donor := &models.User{ID: uuid.New(), Name: "Alice"}

	tests := []struct {
		name         string
		panicValue   interface{}
		setupContext func(c echo.Context)
		wantType     string
		wantUserID   string
	}{
		{
			name:       "string panic",
			panicValue: "nil campaign",
			wantType:   "string",
			wantUserID: "anonymous",
		},
		{
			name:       "error panic",
			panicValue: fmt.Errorf("index out of range"),
			wantType:   "*errors.errorString",
			wantUserID: "anonymous",
		},
		{
			name:       "panic with principal",
			panicValue: "boom",
			setupContext: func(c echo.Context) {
				setPrincipal(c, donor)
			},
			wantType:   "string",
			wantUserID: donor.ID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			zapLogger, logs := newObservedLogger()
			e := echo.New()
			handler := PanicRecoveryWithZapMiddleware(zapLogger)(func(c echo.Context) error {
				if tt.setupContext != nil {
					tt.setupContext(c)
				}
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			// Act
			err := handler(c)

			// Assert
			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var response utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.False(t, response.Success)
			assert.Equal(t, "An unexpected error occurred while processing your request", response.Error)

			entries := logs.FilterMessage("Panic recovered during request processing").All()
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, tt.wantType, fields["panic_type"])
			assert.Equal(t, tt.wantUserID, fields["user_id"])
			assert.Equal(t, "/api/v1/campaigns", fields["path"])
			assert.Contains(t, fields, "stack_trace")
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanicPassesThrough(t *testing.T) {
	zapLogger, logs := newObservedLogger()
	e := echo.New()
	handler := PanicRecoveryWithZapMiddleware(zapLogger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, logs.Len())
}

func TestPanicRecoveryMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryMiddleware(DefaultPanicRecoveryConfig())
	})
}

func TestPanicRecoveryMiddleware_WithoutStack(t *testing.T) {
	zapLogger, logs := newObservedLogger()
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	config.IncludeStack = false

	e := echo.New()
	handler := PanicRecoveryMiddleware(config)(func(c echo.Context) error { panic("boom") })
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.NoError(t, handler(c))
	require.Equal(t, 1, logs.Len())
	assert.NotContains(t, logs.All()[0].ContextMap(), "stack_trace")
}
