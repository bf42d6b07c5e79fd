package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-dashboard-api/internal/domain"
)

var (
	// total de requisições por rota, método e status
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total API requests received",
		},
		[]string{"path", "method", "status"},
	)

	// latência das requisições em segundos
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Histogram of request latencies",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// cargas da planilha por resultado (success/error)
	SheetLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_sheet_loads_total",
			Help: "Total spreadsheet loads by outcome",
		},
		[]string{"outcome"},
	)

	SheetLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dashboard_sheet_load_duration_seconds",
			Help:    "Time spent fetching and parsing the spreadsheet",
			Buckets: prometheus.DefBuckets,
		},
	)

	// linhas descartadas ou suspeitas na última carga, por motivo
	SheetRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dashboard_sheet_rows",
			Help: "Rows seen in the last spreadsheet load by kind",
		},
		[]string{"kind"},
	)

	SnapshotLoadedAt = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_snapshot_loaded_timestamp_seconds",
			Help: "Unix time of the current dataset snapshot",
		},
	)
)

var registerOnce sync.Once

// Register registra os coletores no registry padrão. Pode ser chamado mais de uma vez.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCount,
			RequestLatency,
			SheetLoads,
			SheetLoadDuration,
			SheetRows,
			SnapshotLoadedAt,
		)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}

func ObserveRequest(path, method, status string, duration time.Duration) {
	RequestCount.WithLabelValues(path, method, status).Inc()
	RequestLatency.WithLabelValues(path, method).Observe(duration.Seconds())
}

func ObserveSheetLoadFailure(duration time.Duration) {
	SheetLoads.WithLabelValues("error").Inc()
	SheetLoadDuration.Observe(duration.Seconds())
}

func ObserveSheetLoad(snapshot *domain.DatasetSnapshot, duration time.Duration) {
	SheetLoads.WithLabelValues("success").Inc()
	SheetLoadDuration.Observe(duration.Seconds())

	d := snapshot.Diagnostics
	SheetRows.WithLabelValues("total").Set(float64(d.TotalLines))
	SheetRows.WithLabelValues("parsed").Set(float64(d.Parsed))
	SheetRows.WithLabelValues("short").Set(float64(d.ShortRows))
	SheetRows.WithLabelValues("empty").Set(float64(d.EmptyRows))
	SheetRows.WithLabelValues("invalid_date").Set(float64(d.InvalidDates))
	SnapshotLoadedAt.Set(float64(snapshot.LoadedAt.Unix()))
}
