package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-dashboard-api/internal/api/handler/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/scheduler"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	dashmocks "github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestReloadDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		url            string
		setup          func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Recarga síncrona retorna o novo status",
			url:  "/v1/dashboard/reload",
			setup: func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader) {
				reloader.EXPECT().Reload(gomock.Any()).Return(nil)
				service.EXPECT().Status().Return(domain.DatasetStatus{Loaded: true, SnapshotID: "snap", Records: 10})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"snapshot_id":"snap"`,
		},
		{
			name: "Recarga assíncrona",
			url:  "/v1/dashboard/reload?async=true",
			setup: func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader) {
				reloader.EXPECT().TriggerManualSync()
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "Recarga da planilha iniciada",
		},
		{
			name: "Recarga já em andamento não finge sucesso",
			url:  "/v1/dashboard/reload",
			setup: func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader) {
				reloader.EXPECT().Reload(gomock.Any()).Return(scheduler.ErrReloadInProgress)
			},
			expectedStatus: http.StatusAccepted,
			expectedBody:   "Recarga da planilha já em andamento",
		},
		{
			name: "Falha ao buscar a planilha",
			url:  "/v1/dashboard/reload",
			setup: func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader) {
				reloader.EXPECT().Reload(gomock.Any()).
					Return(dashboarding.NewDashboardError(dashboarding.ErrFetchFailed, apiErrors.ErrExternalService, "status 500"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   apiErrors.ErrExternalService,
		},
		{
			name: "Erro sem contexto vira erro de serviço externo",
			url:  "/v1/dashboard/reload",
			setup: func(service *dashmocks.MockDashboarder, reloader *mocks.MockReloader) {
				reloader.EXPECT().Reload(gomock.Any()).Return(errors.Join(dashboarding.ErrFetchFailed, errors.New("timeout")))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := dashmocks.NewMockDashboarder(ctrl)
			reloader := mocks.NewMockReloader(ctrl)
			tt.setup(service, reloader)

			rec := httptest.NewRecorder()
			newTestRouter(service, reloader).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.url, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestGetDatasetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := dashmocks.NewMockDashboarder(ctrl)
	reloader := mocks.NewMockReloader(ctrl)

	service.EXPECT().Status().Return(domain.DatasetStatus{Loaded: false, LastError: "connection refused"})
	reloader.EXPECT().GetStatus().Return(map[string]any{"sync_enabled": false})

	rec := httptest.NewRecorder()
	newTestRouter(service, reloader).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"last_error":"connection refused"`)
	assert.Contains(t, rec.Body.String(), `"sync_enabled":false`)
}

func TestHealthcheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newTestRouter(dashmocks.NewMockDashboarder(ctrl), mocks.NewMockReloader(ctrl)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}
