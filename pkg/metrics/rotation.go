package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of a full rotation analysis (load, score, decide, persist)
	RotationAnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "rotation_analysis_latency_seconds",
		Help:    "Latency of campaign rotation analysis",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of rotation analyses run
	RotationAnalysisTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rotation_analysis_total",
		Help: "Total rotation analyses run",
	})

	// How many analyses recommended a pause/promote
	RotationActionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rotation_actions_total",
		Help: "Rotation analyses that recommended pausing a campaign",
	})

	BudgetReallocationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "budget_reallocations_total",
		Help: "Total budget reallocation runs",
	})
)

func Init() {
	prometheus.MustRegister(
		RotationAnalysisDuration,
		RotationAnalysisTotal,
		RotationActionsTotal,
		BudgetReallocationsTotal,
	)
}
