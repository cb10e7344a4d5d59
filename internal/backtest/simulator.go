// Package backtest replays a candle series through the same buy/sell rules
// the live engine uses, gating execution on intrabar touch instead of a
// point-in-time price.
package backtest

import (
	"fmt"

	"github.com/Ak270/grid-trader-pro/internal/analysis"
	"github.com/Ak270/grid-trader-pro/internal/model"
)

// Simulator holds the validated parameters of one backtest configuration.
type Simulator struct {
	spacing        float64
	levels         int
	initialCapital float64
}

// New validates the grid configuration up front; an invalid spacing/level
// combination is fatal at construction, not mid-run.
func New(spacing float64, levels int, initialCapital float64) (*Simulator, error) {
	if err := model.ValidateGrid(spacing, levels); err != nil {
		return nil, err
	}
	if initialCapital <= 0 {
		return nil, fmt.Errorf("initial capital must be > 0, got %g", initialCapital)
	}
	return &Simulator{spacing: spacing, levels: levels, initialCapital: initialCapital}, nil
}

// Run replays the candles in order. For each candle the grid is recomputed
// from that candle's close, a level counts as touched when low <= level <=
// high, and only the first touched level per side is acted on, scanning
// nearest-first. The scan stops at the first touch even when the fill is
// rejected, mirroring the live engine's one-level-per-cycle policy.
//
// Identical candles and parameters always produce the identical Result;
// there is no randomness and no dependence on wall-clock time.
func (s *Simulator) Run(candles []model.Candle) (*Result, error) {
	if len(candles) == 0 {
		return nil, fmt.Errorf("no candles")
	}

	pf, err := model.NewPortfolio("BACKTEST", s.initialCapital, s.spacing, s.levels)
	if err != nil {
		return nil, err
	}

	trades := make([]model.Trade, 0)
	balances := make([]float64, 0, len(candles)+1)
	balances = append(balances, s.initialCapital)

	for i, c := range candles {
		grid, err := model.ComputeLevels(c.Close, s.spacing, s.levels)
		if err != nil {
			return nil, fmt.Errorf("candle %d: %w", i, err)
		}

		for _, level := range grid.BuyLevels {
			if c.Low <= level && level <= c.High {
				if tr, err := pf.ExecuteBuy(level, c.Timestamp); err == nil {
					trades = append(trades, tr)
				}
				break
			}
		}

		for _, level := range grid.SellLevels {
			if c.Low <= level && level <= c.High {
				if tr, err := pf.ExecuteSell(level, c.Timestamp); err == nil {
					trades = append(trades, tr)
				}
				break
			}
		}

		pf.LastPrice = c.Close
		balances = append(balances, pf.TotalValue())
	}

	// Convert leftover inventory to cash at the final close.
	finalPrice := candles[len(candles)-1].Close
	finalBalance := pf.Capital + pf.Inventory*finalPrice

	var buys, sells int
	for _, t := range trades {
		if t.Side == model.SideBuy {
			buys++
		} else {
			sells++
		}
	}

	return &Result{
		InitialCapital: s.initialCapital,
		FinalBalance:   finalBalance,
		TotalReturnPct: analysis.TotalReturnPct(finalBalance, s.initialCapital),
		ProfitLoss:     finalBalance - s.initialCapital,

		NumTrades:     len(trades),
		NumBuyTrades:  buys,
		NumSellTrades: sells,

		WinRatePct:     analysis.WinRatePct(trades),
		SharpeRatio:    analysis.SharpeRatio(analysis.StepReturns(balances)),
		MaxDrawdownPct: analysis.MaxDrawdownPct(balances),
		TradesPerMonth: analysis.TradesPerMonth(len(trades), len(candles)),

		Trades:         trades,
		BalanceHistory: balances,

		InventoryRemaining: pf.Inventory,
		FinalPrice:         finalPrice,
	}, nil
}
