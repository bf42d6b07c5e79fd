package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsdomain"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// SheetsIntegrator carrega a planilha publicada e a transforma em um snapshot imutável
type SheetsIntegrator interface {
	LoadSnapshot(ctx context.Context) (*domain.DatasetSnapshot, error)
}

type Integrator struct {
	client sheetsclient.Client
	dates  domain.DateParser
	now    func() time.Time
}

func New(client sheetsclient.Client, dates domain.DateParser) *Integrator {
	return &Integrator{
		client: client,
		dates:  dates,
		now:    time.Now,
	}
}

func (s *Integrator) LoadSnapshot(ctx context.Context) (*domain.DatasetSnapshot, error) {
	startTime := time.Now()
	sourceURL := s.client.SourceURL()

	data, err := s.client.FetchCSV(ctx)
	if err != nil {
		metrics.ObserveSheetLoadFailure(time.Since(startTime))
		logrus.WithFields(logrus.Fields{
			"source_url": sourceURL,
			"error":      err.Error(),
		}).Error("sheets: failed to fetch spreadsheet")
		return nil, err
	}

	records, diagnostics := sheetsdomain.ParseDocumentWithDiagnostics(string(data), &s.dates)

	id, err := utils.GenerateID()
	if err != nil {
		metrics.ObserveSheetLoadFailure(time.Since(startTime))
		return nil, fmt.Errorf("erro ao gerar id do snapshot: %w", err)
	}

	snapshot := &domain.DatasetSnapshot{
		ID:          id,
		SourceURL:   sourceURL,
		LoadedAt:    s.now(),
		Records:     records,
		Diagnostics: diagnostics,
	}

	metrics.ObserveSheetLoad(snapshot, time.Since(startTime))

	logger := logrus.WithFields(logrus.Fields{
		"snapshot_id":   snapshot.ID,
		"total_lines":   diagnostics.TotalLines,
		"parsed":        diagnostics.Parsed,
		"short_rows":    diagnostics.ShortRows,
		"empty_rows":    diagnostics.EmptyRows,
		"invalid_dates": diagnostics.InvalidDates,
		"duration":      time.Since(startTime).String(),
	})
	if diagnostics.ShortRows > 0 || diagnostics.InvalidDates > 0 {
		logger.Warn("sheets: spreadsheet loaded with discarded or undated rows")
	} else {
		logger.Info("sheets: spreadsheet loaded")
	}

	return snapshot, nil
}
