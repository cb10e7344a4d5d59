// Package analysis provides pure performance-metric functions over a
// balance history and a trade list. Nothing here mutates its inputs.
package analysis

import (
	"math"

	"github.com/Ak270/grid-trader-pro/internal/model"
)

// CandlesPerMonth assumes hourly candles (24 per day, 30-day month). A
// different candle cadence must adjust this divisor.
const CandlesPerMonth = 24 * 30

// AnnualizationFactor is the yearly step count used to annualize the
// Sharpe ratio.
const AnnualizationFactor = 252

// TotalReturnPct is the percentage return over the initial capital.
func TotalReturnPct(finalBalance, initialCapital float64) float64 {
	if initialCapital == 0 {
		return 0
	}
	return (finalBalance - initialCapital) / initialCapital * 100
}

// WinRatePct is the share of sells with a positive gross gain, in percent.
// Zero when there are no sells.
func WinRatePct(trades []model.Trade) float64 {
	var sells, wins int
	for _, t := range trades {
		if t.Side != model.SideSell {
			continue
		}
		sells++
		if t.GrossGain > 0 {
			wins++
		}
	}
	if sells == 0 {
		return 0
	}
	return float64(wins) / float64(sells) * 100
}

// StepReturns converts a balance history into per-step fractional returns.
func StepReturns(balances []float64) []float64 {
	if len(balances) < 2 {
		return nil
	}
	out := make([]float64, 0, len(balances)-1)
	for i := 1; i < len(balances); i++ {
		prev := balances[i-1]
		if prev == 0 {
			out = append(out, 0)
			continue
		}
		out = append(out, (balances[i]-prev)/prev)
	}
	return out
}

// SharpeRatio annualizes mean/stdev of the per-step returns. Defined as
// zero when fewer than two samples exist or the returns have no variance.
func SharpeRatio(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))

	stdev := math.Sqrt(variance)
	if stdev == 0 {
		return 0
	}
	return mean / stdev * math.Sqrt(AnnualizationFactor)
}

// MaxDrawdownPct is the worst decline from the running peak of the balance
// history, as a (non-positive) percentage of that peak.
func MaxDrawdownPct(balances []float64) float64 {
	if len(balances) == 0 {
		return 0
	}
	peak := balances[0]
	worst := 0.0
	for _, b := range balances {
		if b > peak {
			peak = b
		}
		if peak == 0 {
			continue
		}
		dd := (b - peak) / peak * 100
		if dd < worst {
			worst = dd
		}
	}
	return worst
}

// TradesPerMonth normalizes the trade count by the candle span.
func TradesPerMonth(tradeCount, candleCount int) float64 {
	if candleCount == 0 {
		return 0
	}
	return float64(tradeCount) / (float64(candleCount) / CandlesPerMonth)
}
