package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/apperror"
)

// plainDecimal matches digits with an optional fractional part
var plainDecimal = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// ParseAmount converts a plain decimal amount string to minor units.
// Anything else, including non-positive amounts, is rejected.
func ParseAmount(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if !plainDecimal.MatchString(trimmed) {
		return 0, apperror.Validation("Please enter a valid donation amount")
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, apperror.Validation("Please enter a valid donation amount")
	}

	minor := math.Round(value * 100)
	if minor <= 0 {
		return 0, apperror.Validation("Donation amount must be greater than zero")
	}
	if minor > math.MaxInt64/2 {
		return 0, apperror.Validation("Donation amount is too large")
	}
	return int64(minor), nil
}
