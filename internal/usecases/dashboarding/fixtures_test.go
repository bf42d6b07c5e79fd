package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var (
	testNow   = time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	testDates = domain.NewDateParser(nil, time.UTC)
)

func record(date, campaign, ad string, spend, conversions float64) domain.CampaignRecord {
	return domain.CampaignRecord{
		AccountName:  "Loja A",
		Date:         date,
		CampaignName: campaign,
		AdName:       ad,
		Spend:        spend,
		Conversions:  conversions,
		Reach:        spend * 10,
		Impressions:  spend * 20,
		ThumbnailURL: "https://img/" + ad + ".png",
		Engagement:   spend,
	}
}

// C2 tem o maior custo em 30 dias; C3 só tem gasto fora da janela; C4 só tem data inválida
func trendFixture() []domain.CampaignRecord {
	return []domain.CampaignRecord{
		record("2024-01-15", "C1", "A1", 100, 2),
		record("2024-01-05", "C1", "A1", 50, 1),
		record("2023-12-20", "C1", "A2", 30, 0),
		record("2024-01-14", "C2", "B1", 300, 3),
		record("2023-11-01", "C3", "D1", 1000, 10),
		record("31/02/2024", "C4", "E1", 999, 9),
		record("2024-01-15", "", "F1", 10, 1),
	}
}
