// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los contadores y el registro propio (no el global).
type Metrics struct {
	reg *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	ingestionBatches *prometheus.CounterVec
	ingestionRows    *prometheus.CounterVec
	exports          *prometheus.CounterVec
}

// New registra todos los contadores en un registro nuevo.
func New() (*Metrics, error) {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP procesadas.",
		}, []string{"method", "path", "status"}),
		ingestionBatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_batches_total",
			Help: "Lotes de ingestión por resultado.",
		}, []string{"result"}),
		ingestionRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ingestion_rows_total",
			Help: "Filas de ingestión aceptadas o descartadas por motivo.",
		}, []string{"outcome"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Exportaciones generadas por formato.",
		}, []string{"format"}),
	}

	for _, c := range []prometheus.Collector{
		m.httpRequests, m.ingestionBatches, m.ingestionRows, m.exports,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := m.reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// HTTPRequest cuenta una petición terminada.
func (m *Metrics) HTTPRequest(method, path string, status int) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// IngestionBatch cuenta un lote procesado.
func (m *Metrics) IngestionBatch(result string) {
	m.ingestionBatches.WithLabelValues(result).Inc()
}

// IngestionRows suma n filas con el resultado indicado.
func (m *Metrics) IngestionRows(outcome string, n int) {
	if n <= 0 {
		return
	}
	m.ingestionRows.WithLabelValues(outcome).Add(float64(n))
}

// ExportRendered cuenta una exportación generada.
func (m *Metrics) ExportRendered(format string) {
	m.exports.WithLabelValues(format).Inc()
}

// Handler sirve el registro en formato de exposición Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// Registry expone el registro (tests).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}
