package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
	"github.com/vfg2006/campaign-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// writeServiceError converte erros do painel em respostas padronizadas
func writeServiceError(w http.ResponseWriter, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		apiErrors.WriteError(w, dashErr.Code, dashErr.Error(), nil)
		return
	}

	switch {
	case errors.Is(err, dashboarding.ErrDataNotLoaded):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrInvalidDateRange):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, dashboarding.ErrFetchFailed):
		apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
	default:
		logrus.WithError(err).Error("Erro inesperado no painel")
		apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
		apiErrors.WriteError(w, apiErr.Code, "Erro ao processar dados do painel", apiErr.Message)
	}
}

// parseFilters lê start_date, end_date (YYYY-MM-DD) e preset da query string
func parseFilters(r *http.Request, loc *time.Location) (domain.DashboardFilters, error) {
	query := r.URL.Query()
	filters := domain.DashboardFilters{}

	startDate, err := utils.ParseDate(query.Get("start_date"), loc)
	if err != nil {
		return filters, errors.New("start_date inválida, use o formato YYYY-MM-DD")
	}
	endDate, err := utils.ParseDate(query.Get("end_date"), loc)
	if err != nil {
		return filters, errors.New("end_date inválida, use o formato YYYY-MM-DD")
	}
	filters.StartDate = startDate
	filters.EndDate = endDate

	if preset := query.Get("preset"); preset != "" {
		days, err := strconv.Atoi(preset)
		if err != nil || !domain.DateRangePreset(days).IsValid() {
			return filters, errors.New("preset inválido, valores aceitos: 7, 14, 30, 90")
		}
		filters.Preset = domain.DateRangePreset(days)
	}

	return filters, nil
}

// parseLimit retorna 0 quando o parâmetro não foi enviado
func parseLimit(r *http.Request) (int, error) {
	value := r.URL.Query().Get("limit")
	if value == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(value)
	if err != nil || limit < 0 {
		return 0, errors.New("limit deve ser um inteiro não negativo")
	}
	return limit, nil
}
