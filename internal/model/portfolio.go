package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientFunds rejects a buy whose total cost exceeds available
	// capital. The portfolio is left untouched and no trade is emitted.
	ErrInsufficientFunds = errors.New("insufficient capital for buy")

	// ErrInsufficientInventory rejects a sell when there is nothing to sell.
	ErrInsufficientInventory = errors.New("no inventory to sell")
)

// Portfolio is the per-asset paper account. Capital and Inventory never go
// negative: an execution that would violate that is rejected before any
// state changes. A Portfolio is owned by exactly one loop (live engine or
// backtest) and must not be mutated concurrently.
type Portfolio struct {
	Asset         string
	Capital       float64
	Inventory     float64
	AvgEntryPrice float64 // meaningless while Inventory is zero
	LastPrice     float64
	GridSpacing   float64
	GridLevels    int
}

// NewPortfolio validates the grid configuration at construction time.
func NewPortfolio(asset string, capital, spacing float64, levels int) (*Portfolio, error) {
	if asset == "" {
		return nil, errors.New("asset is required")
	}
	if capital <= 0 {
		return nil, fmt.Errorf("initial capital must be > 0, got %g", capital)
	}
	if err := ValidateGrid(spacing, levels); err != nil {
		return nil, fmt.Errorf("portfolio %s: %w", asset, err)
	}
	return &Portfolio{
		Asset:       asset,
		Capital:     capital,
		GridSpacing: spacing,
		GridLevels:  levels,
	}, nil
}

// ExecuteBuy commits OrderFraction of current capital at the given price.
// The average entry price becomes the quantity-weighted mean of the old
// basis and this fill.
func (p *Portfolio) ExecuteBuy(price float64, now time.Time) (Trade, error) {
	if price <= 0 {
		return Trade{}, fmt.Errorf("buy price must be > 0, got %g", price)
	}

	notional := p.Capital * OrderFraction
	if notional <= 0 {
		return Trade{}, ErrInsufficientFunds
	}
	quantity := notional / price
	totalCost := BuyCost(notional)

	if p.Capital < totalCost {
		return Trade{}, ErrInsufficientFunds
	}

	oldInventory := p.Inventory
	newInventory := oldInventory + quantity

	p.Capital -= totalCost
	p.AvgEntryPrice = (p.AvgEntryPrice*oldInventory + price*quantity) / newInventory
	p.Inventory = newInventory

	return Trade{
		ID:            uuid.NewString(),
		Timestamp:     now,
		Asset:         p.Asset,
		Side:          SideBuy,
		Price:         price,
		Quantity:      quantity,
		CostOrRevenue: totalCost,
		RealizedPnl:   0,
	}, nil
}

// ExecuteSell sells SellFraction of current inventory at the given price.
// The average entry price is left unchanged; realized P&L is the net
// proceeds relative to cost basis.
func (p *Portfolio) ExecuteSell(price float64, now time.Time) (Trade, error) {
	if price <= 0 {
		return Trade{}, fmt.Errorf("sell price must be > 0, got %g", price)
	}
	if p.Inventory <= 0 {
		return Trade{}, ErrInsufficientInventory
	}

	quantity := p.Inventory * SellFraction
	bd := SellProceeds(price, quantity, p.AvgEntryPrice)

	p.Capital += bd.NetProceeds
	p.Inventory -= quantity

	return Trade{
		ID:            uuid.NewString(),
		Timestamp:     now,
		Asset:         p.Asset,
		Side:          SideSell,
		Price:         price,
		Quantity:      quantity,
		CostOrRevenue: bd.NetProceeds,
		RealizedPnl:   bd.NetProceeds - quantity*p.AvgEntryPrice,
		GrossGain:     bd.GrossGain,
	}, nil
}

// InventoryValue is the mark-to-market value of held units at the last
// known price.
func (p *Portfolio) InventoryValue() float64 {
	return p.Inventory * p.LastPrice
}

// TotalValue is cash plus inventory value.
func (p *Portfolio) TotalValue() float64 {
	return p.Capital + p.InventoryValue()
}
