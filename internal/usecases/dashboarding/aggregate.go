package dashboarding

import "github.com/vfg2006/campaign-dashboard-api/internal/domain"

// Aggregate soma as métricas das linhas. Conjunto vazio resulta em zeros.
func Aggregate(records []domain.CampaignRecord) domain.AggregateTotals {
	var totals domain.AggregateTotals
	for _, record := range records {
		totals.TotalSpend += record.Spend
		totals.TotalConversions += record.Conversions
		totals.TotalReach += record.Reach
		totals.TotalImpressions += record.Impressions
		totals.TotalEngagement += record.Engagement
	}
	return totals
}
