// Package pricing provides the price sources the live engine consumes.
package pricing

import (
	"context"
	"fmt"
	"sync"
)

// PriceSource yields the current price of an asset. A failure means the
// caller should skip the asset this cycle; it is never fatal.
type PriceSource interface {
	Fetch(ctx context.Context, asset string) (float64, error)
}

// FixedSource serves prices from an in-memory table. Used by the demo and
// by tests; Set can be called concurrently with Fetch.
type FixedSource struct {
	mu     sync.RWMutex
	prices map[string]float64
}

func NewFixedSource(prices map[string]float64) *FixedSource {
	cp := make(map[string]float64, len(prices))
	for k, v := range prices {
		cp[k] = v
	}
	return &FixedSource{prices: cp}
}

func (s *FixedSource) Set(asset string, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[asset] = price
}

func (s *FixedSource) Fetch(_ context.Context, asset string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.prices[asset]
	if !ok {
		return 0, fmt.Errorf("no price for %s", asset)
	}
	return price, nil
}
