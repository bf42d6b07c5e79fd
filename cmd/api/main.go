package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/campaign-dashboard-api/internal/api"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotRepo := repository.NewSnapshotRepository()

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(sheetsClient, domain.NewDateParser(cfg.Sheet.DateLayouts, cfg.Location()))

	dashboardService := dashboarding.NewService(cfg, sheetsIntegrator, snapshotRepo)

	reloadService := scheduler.NewSheetReloadService(dashboardService, cfg)

	// Primeira carga da planilha. Em caso de falha o servidor sobe mesmo assim e responde 503
	// até uma recarga bem sucedida.
	if err := reloadService.Reload(ctx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial da planilha")
	}

	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga da planilha")
	} else {
		logrus.Info("Agendador de recarga da planilha iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, reloadService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource muda para o diretório do main para achar o .env em desenvolvimento
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	os.Chdir(path.Dir(file))
}
