package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ak270/grid-trader-pro/internal/backtest"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "backtest":
		cmdBacktest(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli backtest --candles candles.csv --spacing 0.02 --levels 10 --capital 100000 --out results/trades.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - candles CSV columns: timestamp,open,high,low,close (RFC3339 or unix seconds)")
	fmt.Println("  - the trades CSV lists every simulated fill with cost/revenue and realized pnl")
}

func cmdBacktest(args []string) {
	fs := flag.NewFlagSet("backtest", flag.ExitOnError)
	candlesPath := fs.String("candles", "", "Path to candle CSV")
	spacing := fs.Float64("spacing", 0.02, "Grid spacing (fraction)")
	levels := fs.Int("levels", 10, "Grid levels per side")
	capital := fs.Float64("capital", 100000, "Initial capital")
	outPath := fs.String("out", "", "Optional output CSV path for the trade list")
	n := fs.Int("n", 0, "Optional: limit to first N candles (0=all)")
	_ = fs.Parse(args)

	if *candlesPath == "" {
		fmt.Println("--candles is required")
		os.Exit(2)
	}

	candles, err := backtest.ReadCandlesCSV(*candlesPath)
	if err != nil {
		panic(err)
	}
	if *n > 0 && *n < len(candles) {
		candles = candles[:*n]
	}

	sim, err := backtest.New(*spacing, *levels, *capital)
	if err != nil {
		panic(err)
	}
	res, err := sim.Run(candles)
	if err != nil {
		panic(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := backtest.WriteTradesCSV(*outPath, res.Trades); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d trades to %s\n", len(res.Trades), *outPath)
	}

	fmt.Printf("Candles: %d  Trades: %d (buy %d / sell %d)\n",
		len(candles), res.NumTrades, res.NumBuyTrades, res.NumSellTrades)
	fmt.Printf("Final balance: %.2f (return %.2f%%, pnl %.2f)\n",
		res.FinalBalance, res.TotalReturnPct, res.ProfitLoss)
	fmt.Printf("Win rate: %.1f%%  Sharpe: %.3f  Max drawdown: %.2f%%  Trades/month: %.2f\n",
		res.WinRatePct, res.SharpeRatio, res.MaxDrawdownPct, res.TradesPerMonth)
	fmt.Printf("Leftover inventory: %.6f (liquidated at %.2f)\n",
		res.InventoryRemaining, res.FinalPrice)
}
