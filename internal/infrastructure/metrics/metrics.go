package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa las métricas Prometheus de la aplicación sobre un registro propio.
type Metrics struct {
	registry        *prometheus.Registry
	UsersRegistered prometheus.Counter
	LoginFailures   prometheus.Counter
	HTTPRequests    *prometheus.CounterVec
	HTTPDuration    *prometheus.HistogramVec
}

// New crea y registra todas las métricas.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UsersRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "lager_users_registered_total",
			Help: "Total de usuarios registrados",
		}),
		LoginFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "lager_login_failures_total",
			Help: "Total de logins rechazados por credenciales inválidas",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lager_http_requests_total",
			Help: "Peticiones HTTP atendidas por ruta y estado",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lager_http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// UserRegistered incrementa el contador de registros.
func (m *Metrics) UserRegistered() { m.UsersRegistered.Inc() }

// LoginFailed incrementa el contador de logins fallidos.
func (m *Metrics) LoginFailed() { m.LoginFailures.Inc() }

// ObserveRequest registra una petición terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler expone el registro en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
