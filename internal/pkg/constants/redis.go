package constants

// Redis key formats
const (
	KeyRecentlyViewed = "history:recently_viewed:%s" // Format: history:recently_viewed:{user_id}
	KeyActivityFeed   = "activity:recent"
	KeyRateLimit      = "rate:limit:%s:%s:%s" // Format: rate:limit:{prefix}:{path}:{identifier}
)
