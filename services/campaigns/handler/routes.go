package handler

import (
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns"
	httpHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns/handler/http"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the campaigns service
type Handler struct {
	campaignHTTP *httpHandler.CampaignHandler
	jwtConfig    models.JWTConfig
}

// NewHandler creates a new combined handler
func NewHandler(campaignUC campaigns.CampaignUC, cfg *models.Config) *Handler {
	return &Handler{
		campaignHTTP: httpHandler.NewCampaignHandler(campaignUC),
		jwtConfig:    cfg.JWT,
	}
}

// RegisterRoutes registers the campaign routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	group := api.Group("/campaigns")
	group.GET("", h.campaignHTTP.ListCampaigns)
	group.GET("/:campaignID", h.campaignHTTP.GetCampaign, middleware.OptionalJWTMiddleware(h.jwtConfig))
	group.POST("", h.campaignHTTP.CreateCampaign, middleware.JWTAuthMiddleware(h.jwtConfig))
}
