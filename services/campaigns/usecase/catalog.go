package usecase

import (
	"strings"

	"github.com/DaKaufeeBoii/heartfund-fundraising/internal/pkg/models"
)

// Filter keeps campaigns whose title contains searchTerm, ignoring case, and
// whose category equals category. The term is matched as given, whitespace
// included. models.CategoryAll and an empty category match every category.
// Input order is preserved.
func Filter(campaigns []models.Campaign, searchTerm, category string) []models.Campaign {
	term := strings.ToLower(searchTerm)
	anyCategory := category == "" || category == models.CategoryAll

	filtered := make([]models.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if term != "" && !strings.Contains(strings.ToLower(c.Title), term) {
			continue
		}
		if !anyCategory && c.Category != category {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// Featured returns the leading models.FeaturedCampaigns campaigns, unfiltered
func Featured(campaigns []models.Campaign) []models.Campaign {
	n := min(len(campaigns), models.FeaturedCampaigns)
	featured := make([]models.Campaign, n)
	copy(featured, campaigns[:n])
	return featured
}

// Categories lists models.CategoryAll followed by each distinct category in first-seen order
func Categories(campaigns []models.Campaign) []string {
	seen := make(map[string]struct{}, len(campaigns))
	categories := []string{models.CategoryAll}
	for _, c := range campaigns {
		if c.Category == "" || c.Category == models.CategoryAll {
			continue
		}
		if _, ok := seen[c.Category]; ok {
			continue
		}
		seen[c.Category] = struct{}{}
		categories = append(categories, c.Category)
	}
	return categories
}
