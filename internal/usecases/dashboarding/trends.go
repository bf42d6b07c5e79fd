package dashboarding

import (
	"sort"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// Janelas móveis usadas nas tendências, sempre contadas a partir de agora
const (
	TrendWindow7Days  = 7
	TrendWindow14Days = 14
	TrendWindow30Days = 30
)

// CampaignTrends calcula custo, conversões e CPA de cada campanha nas janelas de 7, 14 e 30 dias.
// O filtro de período do painel não se aplica aqui. Campanhas sem gasto em 30 dias ficam de fora.
func CampaignTrends(records []domain.CampaignRecord, now time.Time, dates domain.DateParser) []domain.CampaignTrend {
	byCampaign := make(map[string][]domain.CampaignRecord)
	campaigns := make([]string, 0)

	for _, record := range records {
		if record.CampaignName == "" {
			continue
		}
		if _, exists := byCampaign[record.CampaignName]; !exists {
			campaigns = append(campaigns, record.CampaignName)
		}
		byCampaign[record.CampaignName] = append(byCampaign[record.CampaignName], record)
	}

	trends := make([]domain.CampaignTrend, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignRecords := byCampaign[campaign]

		totals7d := Aggregate(LastNDays(campaignRecords, TrendWindow7Days, now, dates))
		totals14d := Aggregate(LastNDays(campaignRecords, TrendWindow14Days, now, dates))
		totals30d := Aggregate(LastNDays(campaignRecords, TrendWindow30Days, now, dates))

		if totals30d.TotalSpend <= 0 {
			continue
		}

		trend := domain.CampaignTrend{
			CampaignName:   campaign,
			Cost7d:         totals7d.TotalSpend,
			Cost14d:        totals14d.TotalSpend,
			Cost30d:        totals30d.TotalSpend,
			Conversions7d:  totals7d.TotalConversions,
			Conversions14d: totals14d.TotalConversions,
			Conversions30d: totals30d.TotalConversions,
			CPA7d:          totals7d.CostPerConversion(),
			CPA14d:         totals14d.CostPerConversion(),
			CPA30d:         totals30d.CostPerConversion(),
		}
		trend.CPAChangePct, trend.CPADirection = domain.CompareCPA(trend.CPA7d, trend.CPA30d)

		trends = append(trends, trend)
	}

	sort.SliceStable(trends, func(i, j int) bool {
		return trends[i].Cost30d > trends[j].Cost30d
	})

	return trends
}
