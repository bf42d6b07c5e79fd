package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vfg2006/campaign-dashboard-api/pkg/metrics"
)

// Metrics registra contagem e latência por rota. Rotas fora de knownPaths viram "other" para não
// explodir a cardinalidade.
func Metrics(knownPaths []string) func(http.Handler) http.Handler {
	paths := make(map[string]struct{}, len(knownPaths))
	for _, p := range knownPaths {
		paths[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if _, ok := paths[path]; !ok {
				path = "other"
			}

			metrics.ObserveRequest(path, r.Method, strconv.Itoa(rec.statusCode), time.Since(startTime))
		})
	}
}
