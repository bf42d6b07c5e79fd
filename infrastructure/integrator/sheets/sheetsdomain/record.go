package sheetsdomain

import (
	"strings"

	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// Ordem fixa das colunas na planilha publicada
const (
	ColumnAccountName = iota
	ColumnDate
	ColumnCampaignName
	ColumnAdName
	ColumnSpend
	ColumnConversions
	ColumnCostPerConversion
	ColumnReach
	ColumnImpressions
	ColumnThumbnailURL
	ColumnEngagement

	ColumnCount
)

// ParseRecord mapeia os campos de uma linha para um CampaignRecord.
// Retorna false quando a linha tem menos colunas que o esperado.
func ParseRecord(fields []string) (domain.CampaignRecord, bool) {
	if len(fields) < ColumnCount {
		return domain.CampaignRecord{}, false
	}

	return domain.CampaignRecord{
		AccountName:               fields[ColumnAccountName],
		Date:                      fields[ColumnDate],
		CampaignName:              fields[ColumnCampaignName],
		AdName:                    fields[ColumnAdName],
		Spend:                     ParseNumber(fields[ColumnSpend]),
		Conversions:               ParseNumber(fields[ColumnConversions]),
		ReportedCostPerConversion: ParseNumber(fields[ColumnCostPerConversion]),
		Reach:                     ParseNumber(fields[ColumnReach]),
		Impressions:               ParseNumber(fields[ColumnImpressions]),
		ThumbnailURL:              fields[ColumnThumbnailURL],
		Engagement:                ParseNumber(fields[ColumnEngagement]),
	}, true
}

// ParseDocument interpreta o CSV completo. A primeira linha não vazia é o cabeçalho; linhas curtas
// e linhas sem dados são descartadas sem erro.
func ParseDocument(text string) []domain.CampaignRecord {
	records, _ := ParseDocumentWithDiagnostics(text, nil)
	return records
}

// ParseDocumentWithDiagnostics faz o mesmo que ParseDocument e conta o que foi descartado.
// Com dates nil, datas inválidas não são contadas (as linhas são mantidas de qualquer forma).
func ParseDocumentWithDiagnostics(text string, dates *domain.DateParser) ([]domain.CampaignRecord, domain.ParseDiagnostics) {
	var diagnostics domain.ParseDiagnostics

	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return []domain.CampaignRecord{}, diagnostics
	}

	// cabeçalho
	lines = lines[1:]
	diagnostics.TotalLines = len(lines)

	records := make([]domain.CampaignRecord, 0, len(lines))
	for _, line := range lines {
		record, ok := ParseRecord(SplitLine(line))
		if !ok {
			diagnostics.ShortRows++
			continue
		}

		if !record.HasData() {
			diagnostics.EmptyRows++
			continue
		}

		if dates != nil {
			if _, valid := record.ParsedDate(*dates); !valid {
				diagnostics.InvalidDates++
			}
		}

		records = append(records, record)
	}

	diagnostics.Parsed = len(records)

	return records, diagnostics
}

func nonBlankLines(text string) []string {
	lines := strings.Split(text, "\n")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}

	return out
}
