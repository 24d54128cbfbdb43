package handler

import (
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/users"
	httpHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/users/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the users service
type Handler struct {
	userHTTP  *httpHandler.UserHandler
	jwtConfig models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, cfg *models.Config) *Handler {
	return &Handler{
		userHTTP:  httpHandler.NewUserHandler(userUC),
		jwtConfig: cfg.JWT,
	}
}

// RegisterRoutes registers the auth and user routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	auth := api.Group("/auth")
	auth.POST("/register", h.userHTTP.Register)
	auth.POST("/login", h.userHTTP.Login)

	api.GET("/users/me", h.userHTTP.Me, middleware.JWTAuthMiddleware(h.jwtConfig))
}
