package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts handled requests by method, route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userdir_http_requests_total",
		Help: "Total HTTP requests handled, labelled by method, route and status.",
	}, []string{"method", "route", "status"})

	// DirectoryMutations counts create/delete/update operations on the
	// user collection.
	DirectoryMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "userdir_directory_mutations_total",
		Help: "Total mutating operations applied to the user directory.",
	}, []string{"operation"})

	// StorageFailures counts swallowed persistence errors. A non-zero rate
	// means the directory is running on in-memory state only.
	StorageFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "userdir_storage_failures_total",
		Help: "Total best-effort storage operations that failed and were degraded around.",
	})
)
