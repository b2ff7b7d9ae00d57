package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Expense operations
	ExpenseOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expense_operations_total",
			Help: "Expense service operations by outcome",
		},
		[]string{"operation", "result"}, // list|create|update|delete, ok|invalid|not_found|error
	)

	initOnce sync.Once
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

// Init registers the collectors once; later calls are no-ops so tests can
// build several routers in one process.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestsTotal)
		prometheus.MustRegister(ExpenseOperations)
	})
}
