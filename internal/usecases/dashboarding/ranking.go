package dashboarding

import (
	"sort"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// DefaultTopCreativesLimit é a quantidade de criativos exibida no painel
const DefaultTopCreativesLimit = 6

// TopCreatives agrupa as linhas por anúncio e retorna os K com mais conversões.
// Campanha e miniatura do grupo são as da primeira linha vista. Empates mantêm a ordem de aparição.
func TopCreatives(records []domain.CampaignRecord, limit int) []domain.AdPerformance {
	if limit <= 0 {
		limit = DefaultTopCreativesLimit
	}

	groups := make(map[string]*domain.AdPerformance)
	order := make([]string, 0)

	for _, record := range records {
		if record.AdName == "" || record.ThumbnailURL == "" {
			continue
		}

		group, exists := groups[record.AdName]
		if !exists {
			group = &domain.AdPerformance{
				AdName:       record.AdName,
				CampaignName: record.CampaignName,
				ThumbnailURL: record.ThumbnailURL,
			}
			groups[record.AdName] = group
			order = append(order, record.AdName)
		}

		group.Spend += record.Spend
		group.Conversions += record.Conversions
		group.Impressions += record.Impressions
		group.Reach += record.Reach
		group.Engagement += record.Engagement
	}

	ranking := make([]domain.AdPerformance, 0, len(order))
	for _, adName := range order {
		group := groups[adName]
		if group.Conversions <= 0 {
			continue
		}
		group.CostPerConversion = domain.CostPerConversion(group.Spend, group.Conversions)
		ranking = append(ranking, *group)
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Conversions > ranking[j].Conversions
	})

	if len(ranking) > limit {
		ranking = ranking[:limit]
	}

	return ranking
}
