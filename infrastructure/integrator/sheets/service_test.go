package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestIntegrator_LoadSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadedAt := time.Date(2024, 1, 16, 8, 0, 0, 0, time.UTC)
	document := strings.Join([]string{
		"Conta,Data,Campanha,Anúncio,Valor,Conversões,CPA,Alcance,Impressões,Miniatura,Engajamento",
		"Loja A,2024-01-15,C1,A1,\"100,50\",2,\"50,25\",10,20,https://img/1.png,3",
		"Loja A,31/02/2024,C1,A2,10,1,10,1,1,https://img/2.png,1",
		"curta",
	}, "\n")

	tests := []struct {
		name     string
		setup    func(client *mocks.MockClient)
		validate func(t *testing.T, snapshot *domain.DatasetSnapshot, err error)
	}{
		{
			name: "Sucesso - gera snapshot com registros e diagnóstico",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().SourceURL().Return("https://sheet/pub?output=csv")
				client.EXPECT().FetchCSV(gomock.Any()).Return([]byte(document), nil)
			},
			validate: func(t *testing.T, snapshot *domain.DatasetSnapshot, err error) {
				require.NoError(t, err)
				require.NotNil(t, snapshot)

				assert.Len(t, snapshot.ID, 10)
				assert.Equal(t, "https://sheet/pub?output=csv", snapshot.SourceURL)
				assert.Equal(t, loadedAt, snapshot.LoadedAt)
				require.Len(t, snapshot.Records, 2)
				assert.Equal(t, 100.5, snapshot.Records[0].Spend)
				assert.Equal(t, domain.ParseDiagnostics{
					TotalLines:   3,
					ShortRows:    1,
					InvalidDates: 1,
					Parsed:       2,
				}, snapshot.Diagnostics)
			},
		},
		{
			name: "Erro na busca - repassa o erro sem snapshot",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().SourceURL().Return("https://sheet/pub?output=csv")
				client.EXPECT().FetchCSV(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, snapshot *domain.DatasetSnapshot, err error) {
				assert.EqualError(t, err, "connection refused")
				assert.Nil(t, snapshot)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			integrator := New(client, domain.NewDateParser(nil, time.UTC))
			integrator.now = func() time.Time { return loadedAt }

			snapshot, err := integrator.LoadSnapshot(context.Background())
			tt.validate(t, snapshot, err)
		})
	}
}
