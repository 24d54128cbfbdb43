package http

import (
	"net/http"
	"strconv"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/activity"
	"github.com/labstack/echo/v4"
)

// ActivityHandler serves the recent activity feed
type ActivityHandler struct {
	activityUC activity.ActivityUC
}

// NewActivityHandler creates a new activity HTTP handler
func NewActivityHandler(activityUC activity.ActivityUC) *ActivityHandler {
	return &ActivityHandler{
		activityUC: activityUC,
	}
}

// RecentActivity handles GET /activity?limit=
func (h *ActivityHandler) RecentActivity(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return utils.BadRequestResponse(c, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	entries, err := h.activityUC.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Recent activity retrieved successfully", entries)
}
