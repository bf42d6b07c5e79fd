package dashboarding

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

// Clock é a fonte de "agora" do painel; os testes fixam o relógio
type Clock func() time.Time

const defaultRangeDays = 30

type Dashboarder interface {
	Load(ctx context.Context) (*domain.DatasetStatus, error)
	GetDashboard(filters domain.DashboardFilters) (*domain.DashboardResponse, error)
	GetTotals(filters domain.DashboardFilters) (*domain.DashboardMetrics, error)
	GetTopCreatives(filters domain.DashboardFilters, limit int) ([]domain.AdPerformance, error)
	GetTrends(limit int) ([]domain.CampaignTrend, error)
	GetRecords(filters domain.DashboardFilters) ([]domain.CampaignRecord, error)
	ExportWorkbook(filters domain.DashboardFilters) ([]byte, string, error)
	Status() domain.DatasetStatus
}

type Service struct {
	cfg        *config.Config
	integrator sheets.SheetsIntegrator
	repository repository.SnapshotRepository
	dates      domain.DateParser
	clock      Clock

	loadMutex sync.Mutex

	errMutex    sync.RWMutex
	lastError   error
	lastErrorAt time.Time
}

func NewService(
	cfg *config.Config,
	integrator sheets.SheetsIntegrator,
	repo repository.SnapshotRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		integrator: integrator,
		repository: repo,
		dates:      domain.NewDateParser(cfg.Sheet.DateLayouts, cfg.Location()),
		clock:      time.Now,
	}
}

// WithClock troca a fonte de "agora"
func (s *Service) WithClock(clock Clock) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Load busca a planilha e troca o snapshot atual. Em caso de falha o snapshot anterior é mantido.
func (s *Service) Load(ctx context.Context) (*domain.DatasetStatus, error) {
	s.loadMutex.Lock()
	defer s.loadMutex.Unlock()

	snapshot, err := s.integrator.LoadSnapshot(ctx)
	if err != nil {
		s.setLastError(err)
		logrus.WithError(err).Error("Erro ao carregar dados da planilha")
		return nil, NewDashboardError(ErrFetchFailed, apiErrors.ErrExternalService, err.Error())
	}

	s.repository.Save(snapshot)
	s.setLastError(nil)

	status := s.Status()
	return &status, nil
}

func (s *Service) GetDashboard(filters domain.DashboardFilters) (*domain.DashboardResponse, error) {
	snapshot, err := s.current()
	if err != nil {
		return nil, err
	}

	now := s.clock()
	dateRange, err := s.resolveRange(filters, now)
	if err != nil {
		return nil, err
	}

	return s.buildDashboard(snapshot, dateRange, CampaignTrends(snapshot.Records, now, s.dates)), nil
}

// buildDashboard monta a visão do painel a partir de um único snapshot
func (s *Service) buildDashboard(snapshot *domain.DatasetSnapshot, dateRange domain.DateRange, trends []domain.CampaignTrend) *domain.DashboardResponse {
	filtered := FilterByDateRange(snapshot.Records, dateRange.From, dateRange.To, s.dates)

	return &domain.DashboardResponse{
		DateRange:          dateRange,
		AvailableDateRange: AvailableRange(snapshot.Records, s.dates),
		Metrics:            domain.CalculateDashboardMetrics(Aggregate(filtered)),
		TopCreatives:       TopCreatives(filtered, s.cfg.Dashboard.TopCreativesLimit),
		CampaignTrends:     limitTrends(trends, s.cfg.Dashboard.TrendsLimit),
		SnapshotID:         snapshot.ID,
		LoadedAt:           snapshot.LoadedAt,
	}
}

func (s *Service) GetTotals(filters domain.DashboardFilters) (*domain.DashboardMetrics, error) {
	filtered, err := s.filtered(filters)
	if err != nil {
		return nil, err
	}

	metrics := domain.CalculateDashboardMetrics(Aggregate(filtered))
	return &metrics, nil
}

// GetTopCreatives usa o limite configurado quando limit <= 0
func (s *Service) GetTopCreatives(filters domain.DashboardFilters, limit int) ([]domain.AdPerformance, error) {
	filtered, err := s.filtered(filters)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.cfg.Dashboard.TopCreativesLimit
	}

	return TopCreatives(filtered, limit), nil
}

// GetTrends ignora o período selecionado: as janelas são sempre os últimos 7/14/30 dias. limit 0 retorna todas.
func (s *Service) GetTrends(limit int) ([]domain.CampaignTrend, error) {
	snapshot, err := s.current()
	if err != nil {
		return nil, err
	}

	return limitTrends(CampaignTrends(snapshot.Records, s.clock(), s.dates), limit), nil
}

func (s *Service) GetRecords(filters domain.DashboardFilters) ([]domain.CampaignRecord, error) {
	return s.filtered(filters)
}

func (s *Service) Status() domain.DatasetStatus {
	status := domain.DatasetStatus{}

	if snapshot := s.repository.Current(); snapshot != nil {
		loadedAt := snapshot.LoadedAt
		diagnostics := snapshot.Diagnostics

		status.Loaded = true
		status.SnapshotID = snapshot.ID
		status.SourceURL = snapshot.SourceURL
		status.LoadedAt = &loadedAt
		status.Records = len(snapshot.Records)
		status.Diagnostics = &diagnostics
	}

	s.errMutex.RLock()
	defer s.errMutex.RUnlock()
	if s.lastError != nil {
		lastErrorAt := s.lastErrorAt
		status.LastError = s.lastError.Error()
		status.LastErrorAt = &lastErrorAt
	}

	return status
}

func (s *Service) filtered(filters domain.DashboardFilters) ([]domain.CampaignRecord, error) {
	snapshot, err := s.current()
	if err != nil {
		return nil, err
	}

	dateRange, err := s.resolveRange(filters, s.clock())
	if err != nil {
		return nil, err
	}

	return FilterByDateRange(snapshot.Records, dateRange.From, dateRange.To, s.dates), nil
}

func (s *Service) current() (*domain.DatasetSnapshot, error) {
	snapshot := s.repository.Current()
	if snapshot != nil {
		return snapshot, nil
	}

	details := "aguarde a primeira carga da planilha"
	s.errMutex.RLock()
	if s.lastError != nil {
		details = s.lastError.Error()
	}
	s.errMutex.RUnlock()

	return nil, NewDashboardError(ErrDataNotLoaded, apiErrors.ErrCommunication, details)
}

// resolveRange monta o período a partir dos filtros:
// preset => últimos N dias; sem datas => período padrão; datas => dias inteiros (fim vai até 23:59:59).
// Sem data inicial o período começa no início dos dados; sem data final vai até o fim do dia atual.
func (s *Service) resolveRange(filters domain.DashboardFilters, now time.Time) (domain.DateRange, error) {
	if filters.Preset != 0 {
		if !filters.Preset.IsValid() {
			return domain.DateRange{}, NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, "preset deve ser 7, 14, 30 ou 90")
		}
		return filters.Preset.Range(now), nil
	}

	if filters.StartDate == nil && filters.EndDate == nil {
		days := s.cfg.Dashboard.DefaultRangeDays
		if days <= 0 {
			days = defaultRangeDays
		}
		return domain.DateRange{From: now.AddDate(0, 0, -days), To: now}, nil
	}

	dateRange := domain.DateRange{To: utils.EndOfDay(now)}
	if filters.StartDate != nil {
		dateRange.From = utils.StartOfDay(*filters.StartDate)
	}
	if filters.EndDate != nil {
		dateRange.To = utils.EndOfDay(*filters.EndDate)
	}

	if err := dateRange.Validate(); err != nil {
		return domain.DateRange{}, NewDashboardError(ErrInvalidDateRange, apiErrors.ErrInvalidFormat, err.Error())
	}

	return dateRange, nil
}

func (s *Service) setLastError(err error) {
	s.errMutex.Lock()
	defer s.errMutex.Unlock()

	s.lastError = err
	if err != nil {
		s.lastErrorAt = s.clock()
	} else {
		s.lastErrorAt = time.Time{}
	}
}

func limitTrends(trends []domain.CampaignTrend, limit int) []domain.CampaignTrend {
	if limit > 0 && len(trends) > limit {
		return trends[:limit]
	}
	return trends
}
