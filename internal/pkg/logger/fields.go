package logger

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field keeps callers off the zap import
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Domain fields used across the ledger services

func CampaignID(id uuid.UUID) Field {
	return zap.String("campaign_id", id.String())
}

func UserID(id uuid.UUID) Field {
	return zap.String("user_id", id.String())
}

func TransactionID(id string) Field {
	return zap.String("transaction_id", id)
}

// Amount logs a monetary amount in minor units
func Amount(amount int64) Field {
	return zap.Int64("amount", amount)
}
