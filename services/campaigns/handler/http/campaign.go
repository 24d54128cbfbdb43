package http

import (
	"net/http"
	"time"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CampaignHandler handles HTTP requests for campaign operations
type CampaignHandler struct {
	campaignUC campaigns.CampaignUC
}

// NewCampaignHandler creates a new campaign HTTP handler
func NewCampaignHandler(campaignUC campaigns.CampaignUC) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: campaignUC,
	}
}

// ListCampaigns handles GET /campaigns?search=&category=
func (h *CampaignHandler) ListCampaigns(c echo.Context) error {
	var filter models.CampaignFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	catalog, err := h.campaignUC.ListCampaigns(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Campaigns retrieved successfully", catalog)
}

// GetCampaign handles GET /campaigns/:campaignID
func (h *CampaignHandler) GetCampaign(c echo.Context) error {
	id, err := ParseCampaignID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	nrpkg.AddAttribute(c.Request().Context(), "campaign.id", id.String())

	campaign, err := h.campaignUC.GetCampaign(c.Request().Context(), middleware.CurrentUser(c), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	detail := models.CampaignDetail{Campaign: campaign, DaysLeft: campaign.DaysLeft(time.Now())}
	return utils.SuccessResponse(c, http.StatusOK, "Campaign retrieved successfully", detail)
}

// CreateCampaign handles POST /campaigns
func (h *CampaignHandler) CreateCampaign(c echo.Context) error {
	var draft models.CampaignDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	campaign, err := h.campaignUC.CreateCampaign(c.Request().Context(), middleware.CurrentUser(c), draft)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Campaign created successfully", campaign)
}

// ParseCampaignID reads the :campaignID path parameter. A malformed id cannot
// name any campaign, so it is reported as not found.
func ParseCampaignID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("campaignID"))
	if err != nil {
		return uuid.Nil, apperror.NotFound("Campaign not found")
	}
	return id, nil
}
