package rethinkdb

import "github.com/prometheus/client_golang/prometheus"

// Prometheus instrumentation for the connection/query lifecycle. The
// collectors are registered against the default registry in init, when the
// package is imported.
var (
	tokensIssued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rethinkdb_client",
		Name:      "tokens_issued_total",
		Help:      "Number of query tokens allocated by Session.Run/Exec.",
	})

	cursorsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "rethinkdb_client",
		Name:      "cursors_in_flight",
		Help:      "Number of cursors currently registered in a Session's demux table.",
	})

	handshakeFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "rethinkdb_client",
		Name:      "handshake_failures_total",
		Help:      "Number of SCRAM handshakes that failed authentication or transport.",
	})
)

func init() {
	prometheus.MustRegister(tokensIssued, cursorsInFlight, handshakeFailures)
}
