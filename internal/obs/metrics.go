// Package obs expone métricas Prometheus: tráfico HTTP y resultado de las
// ediciones de stock (permitida, rechazada, fallo de persistencia).
package obs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados registrados por RecordStockEdit.
const (
	EditAllowed      = "allowed"
	EditRejected     = "rejected"
	EditPersistError = "persist_error"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total de peticiones HTTP.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia HTTP en segundos.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	stockEditsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stock_edits_total",
			Help: "Ediciones de stock por resultado.",
		},
		[]string{"result"},
	)
)

// Init registra las métricas en el registro por defecto.
func Init() {
	prometheus.MustRegister(httpRequestsTotal, httpRequestDuration, stockEditsTotal)
}

// Handler devuelve el handler net/http de Prometheus (montar vía adaptor).
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware Fiber que mide peticiones por ruta registrada.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		path := c.Route().Path // ruta con placeholders, no la URL cruda
		status := strconv.Itoa(c.Response().StatusCode())
		method := c.Method()

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		return err
	}
}

// RecordStockEdit registra el resultado de una edición de stock.
func RecordStockEdit(result string) {
	stockEditsTotal.WithLabelValues(result).Inc()
}
