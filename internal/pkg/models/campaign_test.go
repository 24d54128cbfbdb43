package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCampaign_DaysLeft(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		want    int
	}{
		{"exactly one week", now.Add(7 * 24 * time.Hour), 7},
		{"partial day rounds up", now.Add(25 * time.Hour), 2},
		{"one minute left", now.Add(time.Minute), 1},
		{"ends now", now, 0},
		{"already ended", now.Add(-48 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Campaign{EndDate: tt.endDate}
			assert.Equal(t, tt.want, c.DaysLeft(now))
		})
	}
}
