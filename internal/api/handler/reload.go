package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
)

// Reloader dispara recargas da planilha e informa o estado do agendador
type Reloader interface {
	Reload(ctx context.Context) error
	TriggerManualSync()
	GetStatus() map[string]any
}

// ReloadDataset recarrega a planilha. Com ?async=true, ou se já houver uma recarga rodando, a resposta é 202.
func ReloadDataset(service dashboarding.Dashboarder, reloader Reloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReloadDataset")

		if r.URL.Query().Get("async") == "true" {
			reloader.TriggerManualSync()
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Recarga da planilha iniciada",
			})
			return
		}

		err := reloader.Reload(r.Context())
		if errors.Is(err, scheduler.ErrReloadInProgress) {
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message":      "Recarga da planilha já em andamento",
				"sync_running": true,
			})
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, service.Status())
	})
}

func GetDatasetStatus(service dashboarding.Dashboarder, reloader Reloader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"dataset":   service.Status(),
			"scheduler": reloader.GetStatus(),
		})
	})
}
