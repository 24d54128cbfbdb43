package donations

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/donations DonationUC

// DonationUC runs the donation workflow for one donor and campaign
type DonationUC interface {
	Start(ctx context.Context, donor *models.User, campaignID uuid.UUID) (*models.DonationOutcome, error)
	Donate(ctx context.Context, donor *models.User, campaignID uuid.UUID, request models.DonationRequest) (*models.DonationOutcome, error)
}
