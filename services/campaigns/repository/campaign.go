package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const campaignColumns = `id, creator_id, creator_name, creator_avatar, title, description,
	long_description, image_urls, category, goal_amount, current_amount, donor_count,
	end_date, created_at`

type CampaignRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewCampaignRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *CampaignRepo {
	return &CampaignRepo{
		cfg: cfg,
		db:  db,
	}
}

// ListCampaigns returns every campaign, newest first
func (r *CampaignRepo) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC`

	campaigns := []models.Campaign{}
	if err := r.db.SelectContext(ctx, &campaigns, query); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// GetCampaign retrieves a campaign by ID
func (r *CampaignRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	var campaign models.Campaign
	if err := r.db.GetContext(ctx, &campaign, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Campaign not found")
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return &campaign, nil
}

// GetCampaignsByIDs returns the campaigns in the order of ids, skipping unknown ids
func (r *CampaignRepo) GetCampaignsByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Campaign, error) {
	if len(ids) == 0 {
		return []models.Campaign{}, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = ANY($1::uuid[])`

	var rows []models.Campaign
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(strIDs)); err != nil {
		return nil, fmt.Errorf("failed to get campaigns by ids: %w", err)
	}

	byID := make(map[uuid.UUID]models.Campaign, len(rows))
	for _, c := range rows {
		byID[c.ID] = c
	}

	campaigns := make([]models.Campaign, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			campaigns = append(campaigns, c)
		}
	}
	return campaigns, nil
}

// InsertCampaign stores a new campaign and returns the stored row
func (r *CampaignRepo) InsertCampaign(ctx context.Context, campaign *models.Campaign) (*models.Campaign, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO campaigns (
			id, creator_id, creator_name, creator_avatar, title, description,
			long_description, image_urls, category, goal_amount, current_amount,
			donor_count, end_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + campaignColumns

	var stored models.Campaign
	err = tx.QueryRowxContext(ctx, query,
		campaign.ID,
		campaign.CreatorID,
		campaign.CreatorName,
		campaign.CreatorAvatar,
		campaign.Title,
		campaign.Description,
		campaign.LongDescription,
		campaign.ImageURLs,
		campaign.Category,
		campaign.GoalAmount,
		campaign.CurrentAmount,
		campaign.DonorCount,
		campaign.EndDate,
	).StructScan(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to insert campaign: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &stored, nil
}

// IncrementAggregate adds amount and one donor to a campaign atomically
func (r *CampaignRepo) IncrementAggregate(ctx context.Context, id uuid.UUID, amount int64) (*models.Campaign, error) {
	query := `
		UPDATE campaigns
		SET current_amount = current_amount + $1, donor_count = donor_count + 1
		WHERE id = $2
		RETURNING ` + campaignColumns

	var campaign models.Campaign
	if err := r.db.QueryRowxContext(ctx, query, amount, id).StructScan(&campaign); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("Campaign not found")
		}
		return nil, fmt.Errorf("failed to increment campaign aggregate: %w", err)
	}
	return &campaign, nil
}
