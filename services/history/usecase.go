package history

import (
	"context"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/DaKaufeeBoii/heartfund-fundraising/services/history HistoryUC

// HistoryUC defines the interface for donor history business logic
type HistoryUC interface {
	GetHistory(ctx context.Context, userID uuid.UUID) (*models.HistorySummary, error)
	RecordView(ctx context.Context, userID, campaignID uuid.UUID) error
	AppendDonation(ctx context.Context, record *models.DonationRecord) error
}
