package dashboarding

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet   = "Resumo"
	trendsSheet    = "Tendencias"
	creativesSheet = "Criativos"
)

// ExportWorkbook gera um xlsx com o resumo do período, as tendências e o ranking de criativos
func (s *Service) ExportWorkbook(filters domain.DashboardFilters) ([]byte, string, error) {
	snapshot, err := s.current()
	if err != nil {
		return nil, "", err
	}

	now := s.clock()
	dateRange, err := s.resolveRange(filters, now)
	if err != nil {
		return nil, "", err
	}

	// resumo, tendências e criativos saem do mesmo snapshot e do mesmo "agora"
	trends := CampaignTrends(snapshot.Records, now, s.dates)
	dashboard := s.buildDashboard(snapshot, dateRange, trends)

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := newHeaderStyle(f)
	if err != nil {
		return nil, "", exportError(err)
	}

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", exportError(err)
	}
	if err := writeSummary(f, dashboard, headerStyle); err != nil {
		return nil, "", exportError(err)
	}

	if _, err := f.NewSheet(trendsSheet); err != nil {
		return nil, "", exportError(err)
	}
	trendRows := make([][]any, 0, len(trends))
	for _, t := range trends {
		trendRows = append(trendRows, []any{
			t.CampaignName,
			utils.RoundWithTwoDecimalPlace(t.Cost7d),
			utils.RoundWithTwoDecimalPlace(t.Cost14d),
			utils.RoundWithTwoDecimalPlace(t.Cost30d),
			t.Conversions7d,
			t.Conversions14d,
			t.Conversions30d,
			utils.RoundWithTwoDecimalPlace(t.CPA7d),
			utils.RoundWithTwoDecimalPlace(t.CPA14d),
			utils.RoundWithTwoDecimalPlace(t.CPA30d),
			utils.RoundWithTwoDecimalPlace(t.CPAChangePct),
			string(t.CPADirection),
		})
	}
	err = writeTable(f, trendsSheet, []string{
		"Campanha", "Custo 7d", "Custo 14d", "Custo 30d",
		"Conversões 7d", "Conversões 14d", "Conversões 30d",
		"CPA 7d", "CPA 14d", "CPA 30d", "Variação CPA (%)", "Tendência",
	}, trendRows, headerStyle)
	if err != nil {
		return nil, "", exportError(err)
	}

	if _, err := f.NewSheet(creativesSheet); err != nil {
		return nil, "", exportError(err)
	}
	creativeRows := make([][]any, 0, len(dashboard.TopCreatives))
	for _, c := range dashboard.TopCreatives {
		creativeRows = append(creativeRows, []any{
			c.AdName,
			c.CampaignName,
			utils.RoundWithTwoDecimalPlace(c.Spend),
			c.Conversions,
			utils.RoundWithTwoDecimalPlace(c.CostPerConversion),
			c.Impressions,
			c.Reach,
			c.Engagement,
			c.ThumbnailURL,
		})
	}
	err = writeTable(f, creativesSheet, []string{
		"Anúncio", "Campanha", "Gasto", "Conversões", "CPA",
		"Impressões", "Alcance", "Engajamento", "Miniatura",
	}, creativeRows, headerStyle)
	if err != nil {
		return nil, "", exportError(err)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", exportError(err)
	}

	filename := fmt.Sprintf("dashboard_%s_%s.xlsx",
		dashboard.DateRange.From.Format(time.DateOnly),
		dashboard.DateRange.To.Format(time.DateOnly),
	)

	logrus.WithFields(logrus.Fields{
		"filename":    filename,
		"snapshot_id": dashboard.SnapshotID,
		"trends":      len(trends),
		"creatives":   len(dashboard.TopCreatives),
	}).Info("Exportação do painel gerada")

	return buffer.Bytes(), filename, nil
}

func writeSummary(f *excelize.File, dashboard *domain.DashboardResponse, headerStyle int) error {
	m := dashboard.Metrics
	rows := [][]any{
		{"Período", fmt.Sprintf("%s a %s", dashboard.DateRange.From.Format("02/01/2006"), dashboard.DateRange.To.Format("02/01/2006"))},
		{"Gasto total", utils.FormatCurrencyBRL(m.TotalSpend)},
		{"Conversões", utils.FormatNumberBR(m.TotalConversions)},
		{"CPA médio", utils.FormatCurrencyBRL(m.AvgCPA)},
		{"Alcance", utils.FormatNumberBR(m.TotalReach)},
		{"Impressões", utils.FormatNumberBR(m.TotalImpressions)},
		{"Engajamento", utils.FormatNumberBR(m.TotalEngagement)},
		{"CTR", fmt.Sprintf("%.2f%%", m.CTR)},
		{"Snapshot", dashboard.SnapshotID},
	}

	return writeTable(f, summarySheet, []string{"Métrica", "Valor"}, rows, headerStyle)
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any, headerStyle int) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for rowIdx, row := range rows {
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	for i := range headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return err
		}
	}

	return nil
}

func newHeaderStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
}

func exportError(err error) error {
	logrus.WithError(err).Error("Erro ao gerar planilha de exportação")
	return NewDashboardError(ErrExportFailed, apiErrors.ErrInternalServer, err.Error())
}
