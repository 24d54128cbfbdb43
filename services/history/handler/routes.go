package handler

import (
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/history"
	httpHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/history/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the history service
type Handler struct {
	historyHTTP *httpHandler.HistoryHandler
	jwtConfig   models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(historyUC history.HistoryUC, cfg *models.Config) *Handler {
	return &Handler{
		historyHTTP: httpHandler.NewHistoryHandler(historyUC),
		jwtConfig:   cfg.JWT,
	}
}

// RegisterRoutes registers the history routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/history", h.historyHTTP.GetHistory, middleware.JWTAuthMiddleware(h.jwtConfig))
}
