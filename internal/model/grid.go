package model

import "fmt"

// GridLevels is one cycle's ladder of buy levels below the reference price
// and sell levels above it. Index 0 is the level nearest the reference on
// each side. Levels are recomputed fresh every cycle; no grid anchor
// survives between cycles.
type GridLevels struct {
	Reference  float64
	BuyLevels  []float64
	SellLevels []float64
}

// ValidateGrid checks a spacing/level-count pair. spacing*count must stay
// below 1, otherwise the farthest buy level would be at or below zero.
func ValidateGrid(spacing float64, count int) error {
	if spacing <= 0 || spacing >= 1 {
		return fmt.Errorf("grid spacing must be in (0, 1), got %g", spacing)
	}
	if count < 1 {
		return fmt.Errorf("grid level count must be >= 1, got %d", count)
	}
	if spacing*float64(count) >= 1 {
		return fmt.Errorf("spacing %g with %d levels reaches a non-positive price", spacing, count)
	}
	return nil
}

// ComputeLevels builds the grid around a reference price:
// buy[j-1] = ref*(1-s*j) and sell[j-1] = ref*(1+s*j) for j = 1..count.
func ComputeLevels(reference, spacing float64, count int) (GridLevels, error) {
	if reference <= 0 {
		return GridLevels{}, fmt.Errorf("reference price must be > 0, got %g", reference)
	}
	if err := ValidateGrid(spacing, count); err != nil {
		return GridLevels{}, err
	}

	g := GridLevels{
		Reference:  reference,
		BuyLevels:  make([]float64, count),
		SellLevels: make([]float64, count),
	}
	for j := 1; j <= count; j++ {
		g.BuyLevels[j-1] = reference * (1 - spacing*float64(j))
		g.SellLevels[j-1] = reference * (1 + spacing*float64(j))
	}
	return g, nil
}
