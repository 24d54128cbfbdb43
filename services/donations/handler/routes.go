package handler

import (
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations"
	httpHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/donations/handler/http"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the donations service
type Handler struct {
	donationHTTP *httpHandler.DonationHandler
	jwtConfig    models.JWTConfig
	rateLimit    int
	ratePeriod   time.Duration
	redisClient  redis.Cmdable
}

// NewHandler creates a new combined handler
func NewHandler(donationUC donations.DonationUC, redisClient redis.Cmdable, cfg *models.Config) *Handler {
	return &Handler{
		donationHTTP: httpHandler.NewDonationHandler(donationUC),
		jwtConfig:    cfg.JWT,
		rateLimit:    cfg.Donation.RateLimit,
		ratePeriod:   time.Duration(cfg.Donation.RateLimitPeriodSec) * time.Second,
		redisClient:  redisClient,
	}
}

// RegisterRoutes registers the donation routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	auth := middleware.JWTAuthMiddleware(h.jwtConfig)
	group := api.Group("/campaigns/:campaignID")
	group.GET("/donation", h.donationHTTP.StartDonation, auth)

	if h.redisClient != nil && h.rateLimit > 0 {
		group.POST("/donations", h.donationHTTP.Donate, auth,
			middleware.UserRateLimiter(h.rateLimit, h.ratePeriod, h.redisClient))
		return
	}
	group.POST("/donations", h.donationHTTP.Donate, auth)
}
