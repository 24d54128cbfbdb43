package repository

import (
	"context"
	"fmt"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/constants"
	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
	"github.com/google/uuid"
)

func recentlyViewedKey(userID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyRecentlyViewed, userID.String())
}

// RecordView moves campaignID to the front of the user's recently viewed list,
// removing any earlier occurrence and keeping at most MaxRecentlyViewed entries.
func (r *HistoryRepo) RecordView(ctx context.Context, userID, campaignID uuid.UUID) error {
	key := recentlyViewedKey(userID)
	member := campaignID.String()

	pipe := r.redisClient.Client.TxPipeline()
	pipe.LRem(ctx, key, 0, member)
	pipe.LPush(ctx, key, member)
	pipe.LTrim(ctx, key, 0, models.MaxRecentlyViewed-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// GetRecentlyViewed returns the recently viewed campaign ids, most recent first
func (r *HistoryRepo) GetRecentlyViewed(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	members, err := r.redisClient.Client.LRange(ctx, recentlyViewedKey(userID), 0, models.MaxRecentlyViewed-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recently viewed: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		id, err := uuid.Parse(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SetRecentlyViewed replaces the list with campaignIDs, keeping the first
// MaxRecentlyViewed distinct entries.
func (r *HistoryRepo) SetRecentlyViewed(ctx context.Context, userID uuid.UUID, campaignIDs []uuid.UUID) error {
	key := recentlyViewedKey(userID)

	seen := make(map[uuid.UUID]struct{}, len(campaignIDs))
	members := make([]interface{}, 0, models.MaxRecentlyViewed)
	for _, id := range campaignIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		members = append(members, id.String())
		if len(members) == models.MaxRecentlyViewed {
			break
		}
	}

	pipe := r.redisClient.Client.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.RPush(ctx, key, members...)
		pipe.LTrim(ctx, key, 0, models.MaxRecentlyViewed-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set recently viewed: %w", err)
	}
	return nil
}
