package middleware

import (
	"fmt"
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// PanicRecoveryConfig holds configuration for panic recovery middleware
type PanicRecoveryConfig struct {
	Logger       *logger.ZapLogger
	IncludeStack bool
	CallerSkip   int
}

// DefaultPanicRecoveryConfig returns default configuration for panic recovery
func DefaultPanicRecoveryConfig() PanicRecoveryConfig {
	return PanicRecoveryConfig{
		IncludeStack: true,
		CallerSkip:   4,
	}
}

// PanicRecoveryMiddleware recovers from panics, reports them and answers 500
func PanicRecoveryMiddleware(config PanicRecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, config)
					err = nil
				}
			}()

			return next(c)
		}
	}
}

// PanicRecoveryWithZapMiddleware creates panic recovery middleware with Zap logger
func PanicRecoveryWithZapMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	config := DefaultPanicRecoveryConfig()
	config.Logger = zapLogger
	return PanicRecoveryMiddleware(config)
}

func handlePanic(c echo.Context, r interface{}, config PanicRecoveryConfig) {
	req := c.Request()

	userID := "anonymous"
	if user := CurrentUser(c); user != nil {
		userID = user.ID.String()
	}
	requestID := getRequestID(c)
	caller := getCaller(config.CallerSkip)

	fields := []logger.Field{
		logger.String("panic_value", fmt.Sprintf("%v", r)),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("caller", caller),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	}
	if config.IncludeStack {
		fields = append(fields, logger.String("stack_trace", string(debug.Stack())))
	}

	txn := newrelic.FromContext(req.Context())
	if txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":   fmt.Sprintf("%T", r),
				"panic.caller": caller,
				"http.method":  req.Method,
				"http.path":    req.URL.Path,
				"user_id":      userID,
				"request_id":   requestID,
			},
		})
	}

	config.Logger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)

	sendPanicResponse(c)
}

func getCaller(skip int) string {
	if pc, file, line, ok := runtime.Caller(skip); ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			return fmt.Sprintf("%s:%d in %s", file, line, fn.Name())
		}
		return fmt.Sprintf("%s:%d", file, line)
	}
	return "unknown"
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func sendPanicResponse(c echo.Context) {
	if c.Response().Committed {
		return
	}
	if err := utils.ErrorResponseHandler(c, http.StatusInternalServerError, "An unexpected error occurred while processing your request"); err != nil {
		_ = c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
