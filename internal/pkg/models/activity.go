package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is one line of the public recent activity feed
type ActivityEntry struct {
	CampaignID    uuid.UUID `json:"campaign_id" db:"campaign_id"`
	CampaignTitle string    `json:"campaign_title" db:"campaign_title"`
	DonorName     string    `json:"donor_name" db:"donor_name"`
	Amount        int64     `json:"amount" db:"amount"`
	Date          time.Time `json:"date" db:"donated_at"`
}
