package http

import (
	"net/http"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/history"
	"github.com/labstack/echo/v4"
)

// HistoryHandler handles HTTP requests for donor history
type HistoryHandler struct {
	historyUC history.HistoryUC
}

// NewHistoryHandler creates a new history HTTP handler
func NewHistoryHandler(historyUC history.HistoryUC) *HistoryHandler {
	return &HistoryHandler{
		historyUC: historyUC,
	}
}

// GetHistory handles GET /history
func (h *HistoryHandler) GetHistory(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	summary, err := h.historyUC.GetHistory(c.Request().Context(), user.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "History retrieved successfully", summary)
}
