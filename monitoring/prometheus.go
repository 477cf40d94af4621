package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/koinledger/koin/logx"
)

type ledgerPromMetrics struct {
	nodeUpUnixSeconds prometheus.Gauge
	invocationCount   *prometheus.CounterVec
	failedCount       *prometheus.CounterVec
	revertCount       *prometheus.CounterVec
	panicCount        prometheus.Counter
}

func newLedgerPromMetrics() *ledgerPromMetrics {
	return &ledgerPromMetrics{
		nodeUpUnixSeconds: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "koin_node_up_timestamp_unix_seconds",
				Help: "Unix timestamp of the daemon start",
			},
		),
		invocationCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koin_entry_invocation_count",
				Help: "The total number of entry-point invocations",
			},
			[]string{"entry"},
		),
		failedCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koin_entry_failed_count",
				Help: "The total number of recoverable invocation failures",
			},
			[]string{"entry", "reason"},
		),
		revertCount: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "koin_entry_revert_count",
				Help: "The total number of non-recoverable invocation aborts",
			},
			[]string{"entry", "reason"},
		),
		panicCount: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "koin_panic_count",
				Help: "The total number of recovered panics",
			},
		),
	}
}

var ledgerMetrics *ledgerPromMetrics

// InitMetrics initializes metrics but does not expose them to an api yet
func InitMetrics() {
	ledgerMetrics = newLedgerPromMetrics()
	ledgerMetrics.nodeUpUnixSeconds.SetToCurrentTime()
}

func RegisterMetrics(mux *http.ServeMux) {
	logx.Info("MONITORING", "Registering prometheus metrics")
	mux.Handle("/metrics", promhttp.Handler())
}

func IncreaseInvocationCount(entry string) {
	if ledgerMetrics == nil {
		return
	}
	ledgerMetrics.invocationCount.WithLabelValues(entry).Inc()
}

func RecordFailedInvocation(entry, reason string) {
	if ledgerMetrics == nil {
		return
	}
	ledgerMetrics.failedCount.WithLabelValues(entry, reason).Inc()
}

func RecordRevertedInvocation(entry, reason string) {
	if ledgerMetrics == nil {
		return
	}
	ledgerMetrics.revertCount.WithLabelValues(entry, reason).Inc()
}

func IncreasePanicCount() {
	if ledgerMetrics == nil {
		return
	}
	ledgerMetrics.panicCount.Inc()
}
