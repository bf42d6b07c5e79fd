package domain

import "time"

// CampaignRecord representa uma linha da planilha publicada de campanhas
type CampaignRecord struct {
	AccountName  string  `json:"account_name"`
	Date         string  `json:"date"`
	CampaignName string  `json:"campaign_name"`
	AdName       string  `json:"ad_name"`
	Spend        float64 `json:"spend"`
	Conversions  float64 `json:"conversions"`
	// Deprecated: valor informado pela planilha; o CPA é sempre recalculado a partir de spend/conversions.
	ReportedCostPerConversion float64 `json:"reported_cost_per_conversion,omitempty"`
	Reach                     float64 `json:"reach"`
	Impressions               float64 `json:"impressions"`
	ThumbnailURL              string  `json:"thumbnail_url"`
	Engagement                float64 `json:"engagement"`
}

// HasData indica se a linha tem algum dado de campanha. Linhas vazias são ruído da planilha.
func (r CampaignRecord) HasData() bool {
	return r.CampaignName != "" || r.Spend > 0 || r.Impressions > 0
}

// ParsedDate interpreta a data da linha. A data não é cacheada: cada consulta reinterpreta o texto.
func (r CampaignRecord) ParsedDate(parser DateParser) (time.Time, bool) {
	return parser.Parse(r.Date)
}

// DatasetSnapshot é o resultado imutável de uma carga da planilha
type DatasetSnapshot struct {
	ID          string           `json:"id"`
	SourceURL   string           `json:"source_url"`
	LoadedAt    time.Time        `json:"loaded_at"`
	Records     []CampaignRecord `json:"-"`
	Diagnostics ParseDiagnostics `json:"diagnostics"`
}

// ParseDiagnostics conta o que foi descartado silenciosamente durante o parse
type ParseDiagnostics struct {
	TotalLines   int `json:"total_lines"`
	ShortRows    int `json:"short_rows"`
	EmptyRows    int `json:"empty_rows"`
	InvalidDates int `json:"invalid_dates"`
	Parsed       int `json:"parsed"`
}
