package model

// Policy constants shared by the live engine and the backtest simulator.
// Both paths price a trade through these functions; nothing else in the
// repository hardcodes a fee or tax rate.
const (
	// FeeRate is the trading fee charged on both sides.
	FeeRate = 0.006
	// TransactionTaxRate is charged on the gross revenue of every sell.
	TransactionTaxRate = 0.01
	// ProfitTaxRate applies to positive gross gains only. Losses are not
	// tax-rebated.
	ProfitTaxRate = 0.30
	// OrderFraction is the share of current capital committed per buy.
	OrderFraction = 0.10
	// SellFraction is the share of current inventory sold per sell. A sell
	// never fully liquidates in one step.
	SellFraction = 0.50
)

// BuyCost returns the total cash required to buy the given notional,
// trading fee included.
func BuyCost(notional float64) float64 {
	return notional * (1 + FeeRate)
}

// SellBreakdown itemizes the cash flows of a single sell.
type SellBreakdown struct {
	GrossRevenue   float64
	Fee            float64
	TransactionTax float64
	GrossGain      float64
	ProfitTax      float64
	NetProceeds    float64
}

// SellProceeds computes the net cash received for selling quantity units at
// price, using avgEntry as the cost basis of the inventory being sold.
func SellProceeds(price, quantity, avgEntry float64) SellBreakdown {
	gross := quantity * price
	fee := gross * FeeRate
	tax := gross * TransactionTaxRate
	gain := gross - quantity*avgEntry

	profitTax := 0.0
	if gain > 0 {
		profitTax = gain * ProfitTaxRate
	}

	return SellBreakdown{
		GrossRevenue:   gross,
		Fee:            fee,
		TransactionTax: tax,
		GrossGain:      gain,
		ProfitTax:      profitTax,
		NetProceeds:    gross - fee - tax - profitTax,
	}
}
