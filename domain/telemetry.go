package domain

import "github.com/prometheus/client_golang/prometheus"

var (
	// tqs_trade_session_edits_total
	//
	// counter that measures the number of user edits applied to trade sessions
	//
	// Has the following labels:
	// * field - the edited field (input, output, percent)
	// * direction - the trade direction (buy, sell)
	TQSTradeSessionEditsMetricName = "tqs_trade_session_edits_total"

	// tqs_trade_session_clamped_edits_total
	//
	// counter that measures the number of user edits that were clamped to the feasible maximum
	//
	// Has the following labels:
	// * field - the edited field (input, output, percent)
	TQSTradeSessionClampedEditsMetricName = "tqs_trade_session_clamped_edits_total"

	// tqs_trade_sessions_open
	//
	// gauge that tracks the number of open trade sessions
	TQSTradeSessionsOpenMetricName = "tqs_trade_sessions_open"

	// tqs_pool_refresh_duration_seconds
	//
	// histogram that measures the duration of recomputing all sessions bound to an updated pool
	TQSPoolRefreshDurationMetricName = "tqs_pool_refresh_duration_seconds"

	// tqs_pool_ingest_error_total
	//
	// counter that measures the number of rejected pool snapshots
	//
	// Has the following labels:
	// * err - the error message occurred
	TQSPoolIngestErrorMetricName = "tqs_pool_ingest_error_total"

	TradeSessionEditsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: TQSTradeSessionEditsMetricName,
			Help: "Total number of user edits applied to trade sessions",
		},
		[]string{"field", "direction"},
	)

	TradeSessionClampedEditsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: TQSTradeSessionClampedEditsMetricName,
			Help: "Total number of user edits clamped to the feasible maximum",
		},
		[]string{"field"},
	)

	TradeSessionsOpenGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: TQSTradeSessionsOpenMetricName,
			Help: "Number of open trade sessions",
		},
	)

	PoolRefreshDurationHistogram = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    TQSPoolRefreshDurationMetricName,
			Help:    "Duration of recomputing sessions bound to an updated pool",
			Buckets: prometheus.DefBuckets,
		},
	)

	PoolIngestErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: TQSPoolIngestErrorMetricName,
			Help: "Total number of rejected pool snapshots",
		},
		[]string{"err"},
	)
)

func init() {
	prometheus.MustRegister(TradeSessionEditsCounter)
	prometheus.MustRegister(TradeSessionClampedEditsCounter)
	prometheus.MustRegister(TradeSessionsOpenGauge)
	prometheus.MustRegister(PoolRefreshDurationHistogram)
	prometheus.MustRegister(PoolIngestErrorCounter)
}
