package model

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func TestComputeLevels_Formula(t *testing.T) {
	cases := []struct {
		ref     float64
		spacing float64
		count   int
	}{
		{100, 0.02, 10},
		{42000, 0.025, 10},
		{1.5, 0.001, 5},
		{100, 0.09, 10},
	}
	for _, tc := range cases {
		g, err := ComputeLevels(tc.ref, tc.spacing, tc.count)
		if err != nil {
			t.Fatalf("ComputeLevels(%g, %g, %d): %v", tc.ref, tc.spacing, tc.count, err)
		}
		if len(g.BuyLevels) != tc.count || len(g.SellLevels) != tc.count {
			t.Fatalf("expected %d levels per side, got %d/%d", tc.count, len(g.BuyLevels), len(g.SellLevels))
		}
		for j := 1; j <= tc.count; j++ {
			wantBuy := tc.ref * (1 - tc.spacing*float64(j))
			wantSell := tc.ref * (1 + tc.spacing*float64(j))
			if !approx(g.BuyLevels[j-1], wantBuy) {
				t.Fatalf("buy[%d] = %g, want %g", j-1, g.BuyLevels[j-1], wantBuy)
			}
			if !approx(g.SellLevels[j-1], wantSell) {
				t.Fatalf("sell[%d] = %g, want %g", j-1, g.SellLevels[j-1], wantSell)
			}
		}
		// Buy levels strictly below reference and strictly positive,
		// decreasing away from it; sells the mirror image.
		prevBuy := tc.ref
		prevSell := tc.ref
		for j := 0; j < tc.count; j++ {
			if g.BuyLevels[j] >= prevBuy || g.BuyLevels[j] <= 0 {
				t.Fatalf("buy[%d] = %g not in (0, %g)", j, g.BuyLevels[j], prevBuy)
			}
			if g.SellLevels[j] <= prevSell {
				t.Fatalf("sell[%d] = %g not above %g", j, g.SellLevels[j], prevSell)
			}
			prevBuy = g.BuyLevels[j]
			prevSell = g.SellLevels[j]
		}
	}
}

func TestComputeLevels_NearestFirst(t *testing.T) {
	g, err := ComputeLevels(100, 0.02, 10)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(g.BuyLevels[0], 98) {
		t.Fatalf("nearest buy level = %g, want 98", g.BuyLevels[0])
	}
	if !approx(g.SellLevels[0], 102) {
		t.Fatalf("nearest sell level = %g, want 102", g.SellLevels[0])
	}
}

func TestValidateGrid_Rejections(t *testing.T) {
	cases := []struct {
		spacing float64
		count   int
	}{
		{0, 10},
		{-0.01, 10},
		{1, 10},
		{0.02, 0},
		{0.1, 10},  // 0.1 * 10 = 1: farthest buy level hits zero
		{0.25, 4},  // exactly 1
		{0.11, 10}, // above 1
	}
	for _, tc := range cases {
		if err := ValidateGrid(tc.spacing, tc.count); err == nil {
			t.Fatalf("ValidateGrid(%g, %d): expected error", tc.spacing, tc.count)
		}
	}
	if err := ValidateGrid(0.099, 10); err != nil {
		t.Fatalf("ValidateGrid(0.099, 10): %v", err)
	}
}

func TestComputeLevels_BadReference(t *testing.T) {
	if _, err := ComputeLevels(0, 0.02, 10); err == nil {
		t.Fatal("expected error for zero reference")
	}
	if _, err := ComputeLevels(-5, 0.02, 10); err == nil {
		t.Fatal("expected error for negative reference")
	}
}
