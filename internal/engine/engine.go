// Package engine drives the live paper-trading decision cycle. One
// cooperative loop owns all portfolio mutation; status reads run
// concurrently and always observe a consistent snapshot.
package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ak270/grid-trader-pro/internal/model"
	"github.com/Ak270/grid-trader-pro/internal/pricing"
)

// State of the trading state machine.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// ErrAlreadyRunning is returned by Start when trading is already active.
var ErrAlreadyRunning = errors.New("trading already running")

// TradeStore durably records completed trades.
type TradeStore interface {
	Record(model.Trade) error
	Recent(limit int) ([]model.Trade, error)
}

// Engine orchestrates one decision cycle per asset: fetch price, compute
// grid levels, act on the nearest level per side, forward executed trades
// to the store.
type Engine struct {
	mu         sync.RWMutex
	portfolios map[string]*model.Portfolio
	assets     []string // fixed iteration order
	lastUpdate time.Time
	tradeCount int

	state atomic.Int32

	prices pricing.PriceSource
	store  TradeStore
	log    zerolog.Logger
	now    func() time.Time
}

// AssetConfig describes one asset's paper account.
type AssetConfig struct {
	InitialCapital float64
	GridSpacing    float64
	GridLevels     int
}

// New validates every asset's grid configuration at construction time.
func New(assets map[string]AssetConfig, prices pricing.PriceSource, store TradeStore, log zerolog.Logger) (*Engine, error) {
	if len(assets) == 0 {
		return nil, errors.New("no assets configured")
	}
	if prices == nil {
		return nil, errors.New("price source is nil")
	}
	if store == nil {
		return nil, errors.New("trade store is nil")
	}

	e := &Engine{
		portfolios: make(map[string]*model.Portfolio, len(assets)),
		prices:     prices,
		store:      store,
		log:        log,
		now:        time.Now,
	}
	for asset, cfg := range assets {
		pf, err := model.NewPortfolio(asset, cfg.InitialCapital, cfg.GridSpacing, cfg.GridLevels)
		if err != nil {
			return nil, err
		}
		e.portfolios[asset] = pf
		e.assets = append(e.assets, asset)
	}
	sort.Strings(e.assets)
	return e, nil
}

// Start transitions Idle/Stopped -> Running. Calling it while already
// running is rejected, not repeated.
func (e *Engine) Start() error {
	if e.state.CompareAndSwap(int32(StateIdle), int32(StateRunning)) {
		return nil
	}
	if e.state.CompareAndSwap(int32(StateStopped), int32(StateRunning)) {
		return nil
	}
	return ErrAlreadyRunning
}

// Stop transitions Running -> Stopped. It does not interrupt a cycle in
// progress; it only suppresses scheduling of the next one. Stopping an
// engine that is not running is a no-op.
func (e *Engine) Stop() {
	e.state.CompareAndSwap(int32(StateRunning), int32(StateStopped))
}

// Running reports whether cycles should be scheduled.
func (e *Engine) Running() bool {
	return State(e.state.Load()) == StateRunning
}

// CurrentState returns the trading state.
func (e *Engine) CurrentState() State {
	return State(e.state.Load())
}

// RunCycle executes one live decision cycle across all configured assets in
// fixed order. A failure on one asset never aborts the cycle for the rest.
func (e *Engine) RunCycle(ctx context.Context) {
	mtxCycles.Inc()
	for _, asset := range e.assets {
		e.cycleAsset(ctx, asset)
	}

	e.mu.Lock()
	e.lastUpdate = e.now()
	total := 0.0
	for _, pf := range e.portfolios {
		total += pf.TotalValue()
	}
	e.mu.Unlock()
	mtxTotalValue.Set(total)
}

func (e *Engine) cycleAsset(ctx context.Context, asset string) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error().Str("asset", asset).Interface("panic", r).
				Msg("asset cycle panicked, continuing with next asset")
		}
	}()

	// Price fetch happens outside the portfolio lock; a stalled source
	// delays this asset only, and a failure skips it for this cycle.
	price, err := e.prices.Fetch(ctx, asset)
	if err != nil {
		mtxPriceFailures.WithLabelValues(asset).Inc()
		e.log.Warn().Str("asset", asset).Err(err).Msg("price unavailable, skipping asset this cycle")
		return
	}

	trades := e.decide(asset, price)

	// Forwarded immediately; a store failure is surfaced as a warning but
	// the in-memory portfolio mutation stands. Until the next successful
	// write the ledger lags live state.
	for _, tr := range trades {
		if err := e.store.Record(tr); err != nil {
			e.log.Warn().Str("asset", asset).Str("trade", tr.ID).Err(err).
				Msg("trade executed but not durably recorded")
		}
	}
}

// decide mutates the asset's portfolio under the write lock and returns any
// executed trades. Once the price is in hand, execution completes without
// further blocking.
func (e *Engine) decide(asset string, price float64) []model.Trade {
	e.mu.Lock()
	defer e.mu.Unlock()

	pf := e.portfolios[asset]
	pf.LastPrice = price

	grid, err := model.ComputeLevels(price, pf.GridSpacing, pf.GridLevels)
	if err != nil {
		e.log.Error().Str("asset", asset).Err(err).Msg("grid computation failed")
		return nil
	}

	now := e.now()
	var executed []model.Trade

	// Only the nearest level on each side is ever acted on per cycle, even
	// though the full ladder is computed.
	if pf.Inventory < 1 {
		tr, err := pf.ExecuteBuy(grid.BuyLevels[0], now)
		switch {
		case err == nil:
			executed = append(executed, tr)
			mtxTrades.WithLabelValues(asset, string(model.SideBuy)).Inc()
			e.log.Info().Str("asset", asset).Float64("price", tr.Price).
				Float64("quantity", tr.Quantity).Msg("buy executed")
		case errors.Is(err, model.ErrInsufficientFunds):
			mtxRejections.WithLabelValues(asset, "insufficient_funds").Inc()
		default:
			e.log.Error().Str("asset", asset).Err(err).Msg("buy failed")
		}
	}

	if pf.Inventory > 0 {
		tr, err := pf.ExecuteSell(grid.SellLevels[0], now)
		switch {
		case err == nil:
			executed = append(executed, tr)
			mtxTrades.WithLabelValues(asset, string(model.SideSell)).Inc()
			e.log.Info().Str("asset", asset).Float64("price", tr.Price).
				Float64("quantity", tr.Quantity).Float64("pnl", tr.RealizedPnl).
				Msg("sell executed")
		case errors.Is(err, model.ErrInsufficientInventory):
			mtxRejections.WithLabelValues(asset, "insufficient_inventory").Inc()
		default:
			e.log.Error().Str("asset", asset).Err(err).Msg("sell failed")
		}
	}

	e.tradeCount += len(executed)
	return executed
}

// RunLoop schedules cycles at the given interval until ctx is cancelled.
// Stop suppresses cycles without exiting the loop, so a later Start resumes
// trading. A cycle-level fault delays the next attempt by cooldown instead
// of terminating the scheduler.
func (e *Engine) RunLoop(ctx context.Context, interval, cooldown time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.log.Info().Dur("interval", interval).Msg("trading loop started")
	for {
		select {
		case <-ctx.Done():
			e.log.Info().Msg("trading loop stopped")
			return
		case <-ticker.C:
		}
		if !e.Running() {
			continue
		}
		if err := e.safeCycle(ctx); err != nil {
			e.log.Error().Err(err).Dur("cooldown", cooldown).Msg("cycle failed, backing off")
			select {
			case <-ctx.Done():
				return
			case <-time.After(cooldown):
			}
		}
	}
}

func (e *Engine) safeCycle(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cycle panic: %v", r)
		}
	}()
	e.RunCycle(ctx)
	return nil
}
