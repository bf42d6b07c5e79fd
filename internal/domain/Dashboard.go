package domain

import (
	"fmt"
	"time"
)

// DateRange é o período selecionado no painel, inclusivo nas duas pontas
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (r DateRange) Validate() error {
	if r.From.After(r.To) {
		return fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}
	return nil
}

// DashboardFilters são os filtros de período vindos da requisição. Preset tem prioridade sobre as datas.
type DashboardFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Preset    DateRangePreset
}

// AvailableDateRange é o intervalo de datas válidas presentes nos dados
type AvailableDateRange struct {
	Min time.Time `json:"min"`
	Max time.Time `json:"max"`
}

type DateRangePreset int

const (
	DateRangePreset7Days  DateRangePreset = 7
	DateRangePreset14Days DateRangePreset = 14
	DateRangePreset30Days DateRangePreset = 30
	DateRangePreset90Days DateRangePreset = 90
)

var DateRangePresets = []DateRangePreset{
	DateRangePreset7Days,
	DateRangePreset14Days,
	DateRangePreset30Days,
	DateRangePreset90Days,
}

func (p DateRangePreset) IsValid() bool {
	for _, preset := range DateRangePresets {
		if p == preset {
			return true
		}
	}
	return false
}

// Range calcula [now - N dias, now]
func (p DateRangePreset) Range(now time.Time) DateRange {
	return DateRange{From: now.AddDate(0, 0, -int(p)), To: now}
}

// DashboardResponse é a visão completa do painel para um período
type DashboardResponse struct {
	DateRange          DateRange           `json:"date_range"`
	AvailableDateRange *AvailableDateRange `json:"available_date_range"`
	Metrics            DashboardMetrics    `json:"metrics"`
	TopCreatives       []AdPerformance     `json:"top_creatives"`
	CampaignTrends     []CampaignTrend     `json:"campaign_trends"`
	SnapshotID         string              `json:"snapshot_id"`
	LoadedAt           time.Time           `json:"loaded_at"`
}

// DatasetStatus descreve a carga atual dos dados
type DatasetStatus struct {
	Loaded      bool              `json:"loaded"`
	SnapshotID  string            `json:"snapshot_id,omitempty"`
	SourceURL   string            `json:"source_url,omitempty"`
	LoadedAt    *time.Time        `json:"loaded_at,omitempty"`
	Records     int               `json:"records"`
	Diagnostics *ParseDiagnostics `json:"diagnostics,omitempty"`
	LastError   string            `json:"last_error,omitempty"`
	LastErrorAt *time.Time        `json:"last_error_at,omitempty"`
}
