package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CategoryAll is the catalog sentinel matching every category
const CategoryAll = "All"

// FeaturedCampaigns is how many leading campaigns the catalog features
const FeaturedCampaigns = 3

// MaxCampaignImages caps the number of images attached at creation
const MaxCampaignImages = 5

// DefaultCampaignImage is used when a campaign is created without images
const DefaultCampaignImage = "https://placehold.co/800x450?text=HeartFund"

// Campaign is the campaign aggregate record. Amounts are minor currency units.
type Campaign struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	CreatorID       uuid.UUID      `json:"creator_id" db:"creator_id"`
	CreatorName     string         `json:"creator_name" db:"creator_name"`
	CreatorAvatar   string         `json:"creator_avatar" db:"creator_avatar"`
	Title           string         `json:"title" db:"title"`
	Description     string         `json:"description" db:"description"`
	LongDescription string         `json:"long_description" db:"long_description"`
	ImageURLs       pq.StringArray `json:"image_urls" db:"image_urls"`
	Category        string         `json:"category" db:"category"`
	GoalAmount      int64          `json:"goal_amount" db:"goal_amount"`
	CurrentAmount   int64          `json:"current_amount" db:"current_amount"`
	DonorCount      int            `json:"donor_count" db:"donor_count"`
	EndDate         time.Time      `json:"end_date" db:"end_date"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the campaign end date has passed at now
func (c *Campaign) IsExpired(now time.Time) bool {
	return now.After(c.EndDate)
}

// DaysLeft is the number of started days until the end date, never negative
func (c *Campaign) DaysLeft(now time.Time) int {
	remaining := c.EndDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// IsCreator reports whether userID owns the campaign
func (c *Campaign) IsCreator(userID uuid.UUID) bool {
	return c.CreatorID == userID
}

// CampaignDetail is the detail view of one campaign
type CampaignDetail struct {
	*Campaign
	DaysLeft int `json:"days_left"`
}

// CampaignDraft is the input for creating a campaign
type CampaignDraft struct {
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"required,max=500"`
	LongDescription string    `json:"long_description"`
	ImageURLs       []string  `json:"image_urls" validate:"max=5,dive,url"`
	Category        string    `json:"category" validate:"required"`
	GoalAmount      int64     `json:"goal_amount" validate:"gt=0"`
	EndDate         time.Time `json:"end_date" validate:"required"`
}

// CampaignFilter holds catalog query parameters
type CampaignFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// CampaignCatalog is the browse view over campaigns
type CampaignCatalog struct {
	Featured   []Campaign `json:"featured"`
	Campaigns  []Campaign `json:"campaigns"`
	Categories []string   `json:"categories"`
	Total      int        `json:"total"`
}
