package backtest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Ak270/grid-trader-pro/internal/model"
)

// WriteTradesCSV writes the trade list in ledger-export column order:
// timestamp, asset, side, price, quantity, cost_or_revenue, realized_pnl.
func WriteTradesCSV(path string, trades []model.Trade) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"timestamp",
		"asset",
		"side",
		"price",
		"quantity",
		"cost_or_revenue",
		"realized_pnl",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			fmtTime(t.Timestamp),
			t.Asset,
			string(t.Side),
			fmtFloat(t.Price),
			fmtFloat(t.Quantity),
			fmtFloat(t.CostOrRevenue),
			fmtFloat(t.RealizedPnl),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReadCandlesCSV loads OHLC candles from a CSV with a header row of
// timestamp,open,high,low,close. Timestamps are RFC3339 or unix seconds.
func ReadCandlesCSV(path string) ([]model.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no candle rows", path)
	}

	candles := make([]model.Candle, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("%s: row %d has %d columns, want 5", path, i+2, len(row))
		}
		ts, err := parseTime(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		c := model.Candle{Timestamp: ts}
		for j, dst := range []*float64{&c.Open, &c.High, &c.Low, &c.Close} {
			v, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d col %d: %w", path, i+2, j+2, err)
			}
			*dst = v
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
