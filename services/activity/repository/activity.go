package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/database"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/logger"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

type ActivityRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

func NewActivityRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ActivityRepo {
	return &ActivityRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// PushEntry puts entry at the head of the feed and trims it to size
func (r *ActivityRepo) PushEntry(ctx context.Context, entry models.ActivityEntry, size int) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal activity entry: %w", err)
	}

	pipe := r.redisClient.Client.TxPipeline()
	pipe.LPush(ctx, constants.KeyActivityFeed, data)
	if size > 0 {
		pipe.LTrim(ctx, constants.KeyActivityFeed, 0, int64(size-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push activity entry: %w", err)
	}
	return nil
}

// ReplaceFeed swaps the whole feed for entries, kept in the given order
func (r *ActivityRepo) ReplaceFeed(ctx context.Context, entries []models.ActivityEntry) error {
	values := make([]interface{}, 0, len(entries))
	for _, entry := range entries {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal activity entry: %w", err)
		}
		values = append(values, data)
	}

	pipe := r.redisClient.Client.TxPipeline()
	pipe.Del(ctx, constants.KeyActivityFeed)
	if len(values) > 0 {
		pipe.RPush(ctx, constants.KeyActivityFeed, values...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace activity feed: %w", err)
	}
	return nil
}

// RecentEntries returns up to limit entries, newest first
func (r *ActivityRepo) RecentEntries(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if limit <= 0 {
		return []models.ActivityEntry{}, nil
	}

	raw, err := r.redisClient.Client.LRange(ctx, constants.KeyActivityFeed, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read activity feed: %w", err)
	}

	entries := make([]models.ActivityEntry, 0, len(raw))
	for _, item := range raw {
		var entry models.ActivityEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			logger.Warn("Skipping malformed activity entry", logger.Err(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *ActivityRepo) LatestDonations(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	query := `
		SELECT d.campaign_id, d.campaign_title, COALESCE(u.name, '') AS donor_name, d.amount, d.donated_at
		FROM donations d
		LEFT JOIN users u ON u.id = d.user_id
		ORDER BY d.donated_at DESC
		LIMIT $1
	`

	entries := []models.ActivityEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to load latest donations: %w", err)
	}
	return entries, nil
}
