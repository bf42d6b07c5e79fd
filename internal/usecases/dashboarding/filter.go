package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// FilterByDateRange mantém as linhas com data em [start, end], inclusivo nas duas pontas.
// Linhas sem data válida ficam de fora.
func FilterByDateRange(records []domain.CampaignRecord, start, end time.Time, dates domain.DateParser) []domain.CampaignRecord {
	filtered := make([]domain.CampaignRecord, 0, len(records))
	for _, record := range records {
		date, ok := record.ParsedDate(dates)
		if !ok {
			continue
		}
		if date.Before(start) || date.After(end) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// LastNDays filtra a janela [now - days, now]
func LastNDays(records []domain.CampaignRecord, days int, now time.Time, dates domain.DateParser) []domain.CampaignRecord {
	return FilterByDateRange(records, now.AddDate(0, 0, -days), now, dates)
}

// AvailableRange retorna a menor e a maior data válida, ou nil quando nenhuma linha tem data válida
func AvailableRange(records []domain.CampaignRecord, dates domain.DateParser) *domain.AvailableDateRange {
	var available *domain.AvailableDateRange
	for _, record := range records {
		date, ok := record.ParsedDate(dates)
		if !ok {
			continue
		}

		if available == nil {
			available = &domain.AvailableDateRange{Min: date, Max: date}
			continue
		}
		if date.Before(available.Min) {
			available.Min = date
		}
		if date.After(available.Max) {
			available.Max = date
		}
	}
	return available
}
