// Package metrics contadores Prometheus del PG y del servidor HTTP.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jhoicas/pg-hostel-api/internal/application/ports"
)

var _ ports.Recorder = (*Metrics)(nil)

// Metrics implementa ports.Recorder y expone además métricas HTTP.
type Metrics struct {
	Registry *prometheus.Registry

	ResidentsRegistered *prometheus.CounterVec
	RoomsAllocated      prometheus.Counter
	RentChanges         *prometheus.CounterVec
	ComplaintsFiled     prometheus.Counter
	ComplaintsResolved  prometheus.Counter
	NoticesPosted       prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registra todas las métricas en un registry propio (más los colectores de Go y proceso).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		ResidentsRegistered: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartpg_residents_registered_total",
			Help: "Residentes dados de alta, por origen (self | admin)",
		}, []string{"source"}),
		RoomsAllocated: f.NewCounter(prometheus.CounterOpts{
			Name: "smartpg_rooms_allocated_total",
			Help: "Asignaciones de habitación que cambiaron el estado",
		}),
		RentChanges: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartpg_rent_status_changes_total",
			Help: "Cambios del estado de renta, por nuevo valor",
		}, []string{"paid"}),
		ComplaintsFiled: f.NewCounter(prometheus.CounterOpts{
			Name: "smartpg_complaints_filed_total",
			Help: "Quejas registradas",
		}),
		ComplaintsResolved: f.NewCounter(prometheus.CounterOpts{
			Name: "smartpg_complaints_resolved_total",
			Help: "Quejas resueltas",
		}),
		NoticesPosted: f.NewCounter(prometheus.CounterOpts{
			Name: "smartpg_notices_posted_total",
			Help: "Anuncios publicados",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "smartpg_http_requests_total",
			Help: "Requests HTTP por método, ruta y código",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smartpg_http_request_duration_seconds",
			Help:    "Duración de los requests HTTP",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route"}),
	}
}

func (m *Metrics) ResidentRegistered(source string) { m.ResidentsRegistered.WithLabelValues(source).Inc() }
func (m *Metrics) RoomAllocated()                   { m.RoomsAllocated.Inc() }
func (m *Metrics) ComplaintFiled()                  { m.ComplaintsFiled.Inc() }
func (m *Metrics) ComplaintResolved()               { m.ComplaintsResolved.Inc() }
func (m *Metrics) NoticePosted()                    { m.NoticesPosted.Inc() }

func (m *Metrics) RentStatusChanged(paid bool) {
	m.RentChanges.WithLabelValues(strconv.FormatBool(paid)).Inc()
}

// ObserveHTTP registra un request terminado. Llamar con time.Now() del inicio.
func (m *Metrics) ObserveHTTP(method, route string, status int, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}
