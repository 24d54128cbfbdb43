package handler

import (
	"context"

	natspkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/nats"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity"
	httpHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/handler/http"
	natsHandler "github.com/DaKaufeeBoii/heartfund-fundraising/services/activity/handler/nats"
	"github.com/labstack/echo/v4"
)

// Handler combines all handlers for the activity service
type Handler struct {
	activityHTTP *httpHandler.ActivityHandler
	activityNATS *natsHandler.ActivityHandler
}

// NewHandler creates a new combined handler
func NewHandler(activityUC activity.ActivityUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		activityHTTP: httpHandler.NewActivityHandler(activityUC),
		activityNATS: natsHandler.NewActivityHandler(activityUC, natsClient),
	}
}

// RegisterRoutes registers the activity routes under api
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/activity", h.activityHTTP.RecentActivity)
}

// InitNATSConsumers starts the donation event consumer
func (h *Handler) InitNATSConsumers(ctx context.Context) error {
	return h.activityNATS.InitNATSConsumers(ctx)
}
