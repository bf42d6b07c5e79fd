// Package scheduler contém os serviços de agendamento para atualização dos dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

// ErrReloadInProgress indica que outra recarga já está rodando e esta chamada não buscou a planilha
var ErrReloadInProgress = errors.New("recarga da planilha já em andamento")

// SnapshotLoader recarrega a planilha e troca o snapshot atual
type SnapshotLoader interface {
	Load(ctx context.Context) (*domain.DatasetStatus, error)
}

type SheetReloadConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

type SheetReloadService struct {
	scheduler           *gocron.Scheduler
	loader              SnapshotLoader
	config              SheetReloadConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewSheetReloadService(loader SnapshotLoader, cfg *config.Config) *SheetReloadService {
	reloadConfig := SheetReloadConfig{
		CronSchedule: cfg.Sheet.ReloadCron,    // Default: a cada 30 minutos
		SyncEnabled:  cfg.Sheet.ReloadEnabled, // Default: desabilitado
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reloadConfig.CronSchedule,
		"enabled":       reloadConfig.SyncEnabled,
	}).Info("Configuração do agendador de recarga da planilha carregada")

	return &SheetReloadService{
		scheduler: gocron.NewScheduler(cfg.Location()),
		loader:    loader,
		config:    reloadConfig,
	}
}

func (s *SheetReloadService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de recarga da planilha desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de recarga da planilha")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Reload(ctx); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga agendada da planilha")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga da planilha: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de recarga da planilha")
		s.scheduler.Stop()
	}()

	return nil
}

// Reload executa uma recarga. Se outra já estiver em andamento, retorna ErrReloadInProgress sem buscar a planilha.
func (s *SheetReloadService) Reload(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Recarga da planilha já está em execução")
		return ErrReloadInProgress
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	status, err := s.loader.Load(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": status.SnapshotID,
		"records":     status.Records,
	}).Info("Recarga da planilha concluída")

	return nil
}

// TriggerManualSync dispara a recarga em background
func (s *SheetReloadService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga da planilha já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual da planilha")
	go func() {
		if err := s.Reload(context.Background()); err != nil && !errors.Is(err, ErrReloadInProgress) {
			logrus.WithError(err).Error("Erro na recarga manual da planilha")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *SheetReloadService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
