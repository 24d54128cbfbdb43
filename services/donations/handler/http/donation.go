package http

import (
	"fmt"
	"net/http"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/middleware"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	nrpkg "github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/newrelic"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/utils"
	campaignHTTP "github.com/DaKaufeeBoii/heartfund-fundraising/services/campaigns/handler/http"
	"github.com/DaKaufeeBoii/heartfund-fundraising/services/donations"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DonationHandler handles HTTP requests for the donation workflow
type DonationHandler struct {
	donationUC donations.DonationUC
}

// NewDonationHandler creates a new donation HTTP handler
func NewDonationHandler(donationUC donations.DonationUC) *DonationHandler {
	return &DonationHandler{
		donationUC: donationUC,
	}
}

// StartDonation handles GET /campaigns/:campaignID/donation
func (h *DonationHandler) StartDonation(c echo.Context) error {
	campaignID, err := campaignHTTP.ParseCampaignID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	outcome, err := h.donationUC.Start(c.Request().Context(), middleware.CurrentUser(c), campaignID)
	if err != nil {
		return h.refuse(c, campaignID, outcome, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Donation started", outcome)
}

// Donate handles POST /campaigns/:campaignID/donations
func (h *DonationHandler) Donate(c echo.Context) error {
	campaignID, err := campaignHTTP.ParseCampaignID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	nrpkg.AddAttribute(c.Request().Context(), "campaign.id", campaignID.String())

	var request models.DonationRequest
	if err := c.Bind(&request); err != nil {
		logger.WarnCtx(c.Request().Context(), "Invalid donation payload",
			logger.CampaignID(campaignID),
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	outcome, err := h.donationUC.Donate(c.Request().Context(), middleware.CurrentUser(c), campaignID, request)
	if err != nil {
		return h.refuse(c, campaignID, outcome, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, outcome.Message.Text, outcome)
}

// refuse writes a stopped workflow. Ended campaigns redirect to the campaign page.
func (h *DonationHandler) refuse(c echo.Context, campaignID uuid.UUID, outcome *models.DonationOutcome, err error) error {
	if apperror.ReasonOf(err) == apperror.ReasonCampaignExpired {
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/v1/campaigns/%s", campaignID))
	}
	if apperror.ReasonOf(err) == apperror.ReasonReconciliationNeeded {
		logger.ErrorCtx(c.Request().Context(), "Donation captured but not fully recorded",
			logger.CampaignID(campaignID),
			logger.Err(err))
	}
	if outcome == nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.AppErrorResponseWithData(c, err, outcome)
}
