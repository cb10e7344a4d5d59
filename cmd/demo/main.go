package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/Ak270/grid-trader-pro/internal/backtest"
	"github.com/Ak270/grid-trader-pro/internal/model"
)

// Demo:
// - Generate a synthetic oscillating price series
// - Run the grid backtest over it
// - Print the result summary to show how the pieces fit together
func main() {
	n := flag.Int("n", 720, "Number of hourly candles to simulate")
	spacing := flag.Float64("spacing", 0.02, "Grid spacing (fraction)")
	levels := flag.Int("levels", 10, "Grid levels per side")
	capital := flag.Float64("capital", 100000, "Initial capital")
	flag.Parse()

	candles := syntheticCandles(*n)

	sim, err := backtest.New(*spacing, *levels, *capital)
	if err != nil {
		panic(err)
	}
	res, err := sim.Run(candles)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d candles with spacing %.3f, %d levels\n", *n, *spacing, *levels)
	fmt.Printf("Trades: %d (buy %d / sell %d)\n", res.NumTrades, res.NumBuyTrades, res.NumSellTrades)
	fmt.Printf("Final balance: %.2f (return %.2f%%)\n", res.FinalBalance, res.TotalReturnPct)
	fmt.Printf("Win rate %.1f%%  Sharpe %.3f  Max drawdown %.2f%%\n",
		res.WinRatePct, res.SharpeRatio, res.MaxDrawdownPct)
}

// syntheticCandles builds an oscillating series around 100 with enough
// intrabar range to touch grid levels. Deterministic on purpose.
func syntheticCandles(n int) []model.Candle {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := make([]model.Candle, 0, n)
	prev := 100.0
	for i := 0; i < n; i++ {
		close := 100 + 10*math.Sin(float64(i)/24*2*math.Pi)
		high := math.Max(prev, close) * 1.03
		low := math.Min(prev, close) * 0.97
		candles = append(candles, model.Candle{
			Timestamp: t0.Add(time.Duration(i) * time.Hour),
			Open:      prev,
			High:      high,
			Low:       low,
			Close:     close,
		})
		prev = close
	}
	return candles
}
