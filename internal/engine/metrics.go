// Prometheus metrics for the live engine.
//
//   - grid_trades_total{asset,side}        – executed paper trades
//   - grid_rejections_total{asset,reason}  – business-rule rejections
//   - grid_price_failures_total{asset}     – price-source failures
//   - grid_cycles_total                    – decision cycles run
//   - grid_total_value                     – mark-to-market value across assets
//
// Registered in init() and served at /metrics by cmd/api.
package engine

import "github.com/prometheus/client_golang/prometheus"

var (
	mtxTrades = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_trades_total",
			Help: "Executed paper trades",
		},
		[]string{"asset", "side"},
	)

	mtxRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_rejections_total",
			Help: "Orders rejected by business rules",
		},
		[]string{"asset", "reason"},
	)

	mtxPriceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grid_price_failures_total",
			Help: "Price source failures causing an asset to be skipped",
		},
		[]string{"asset"},
	)

	mtxCycles = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "grid_cycles_total",
			Help: "Live decision cycles executed",
		},
	)

	mtxTotalValue = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "grid_total_value",
			Help: "Cash plus inventory value across all assets",
		},
	)
)

func init() {
	prometheus.MustRegister(mtxTrades, mtxRejections, mtxPriceFailures, mtxCycles, mtxTotalValue)
}
