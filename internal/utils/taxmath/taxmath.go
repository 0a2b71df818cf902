// Package taxmath converts gross, tax-inclusive revenue figures into net
// revenue plus a breakdown by named tax. The same math backs the nightly tax
// summary and the financial reports.
package taxmath

import (
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// DefaultRates is the fallback tax table used whenever the configured table
// is absent or malformed: 18% VAT plus 10% service charge.
func DefaultRates() []domain.TaxRate {
	return []domain.TaxRate{
		{Name: "VAT", Rate: decimal.NewFromInt(18)},
		{Name: "Service", Rate: decimal.NewFromInt(10)},
	}
}

// SanitizeRates returns the given table if it is usable, or the default table
// if it is empty or contains a negative rate. Invalid configuration is
// recovered locally and never surfaced to callers.
func SanitizeRates(rates []domain.TaxRate) []domain.TaxRate {
	if len(rates) == 0 {
		return DefaultRates()
	}
	for _, r := range rates {
		if r.Name == "" || r.Rate.IsNegative() {
			return DefaultRates()
		}
	}
	return rates
}

// Breakdown decomposes a tax-inclusive gross amount: with total rate
// R = sum(rates), net = gross / (1 + R/100), and each named tax contributes
// net * rate/100, rounded to 2 decimals independently. The per-line rounding
// error against the total is accepted. A zero gross or zero total rate yields
// an empty breakdown with netRevenue = gross.
func Breakdown(gross decimal.Decimal, rates []domain.TaxRate) domain.TaxBreakdown {
	rates = SanitizeRates(rates)

	totalRate := decimal.Zero
	for _, r := range rates {
		totalRate = totalRate.Add(r.Rate)
	}

	result := domain.TaxBreakdown{
		PerTax:     make(map[string]decimal.Decimal, len(rates)),
		TotalTax:   decimal.Zero,
		NetRevenue: gross,
	}
	if gross.IsZero() || totalRate.IsZero() {
		return result
	}

	net := gross.Div(one.Add(totalRate.Div(hundred))).Round(2)
	result.NetRevenue = net

	for _, r := range rates {
		amount := net.Mul(r.Rate).Div(hundred).Round(2)
		result.PerTax[r.Name] = amount
		result.TotalTax = result.TotalTax.Add(amount)
	}
	return result
}

// AddOn computes additive tax on a net amount: tax = net * rate/100, rounded
// to 2 decimals. Package posting uses this because component retail values
// are net prices.
func AddOn(net decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return net.Mul(rate).Div(hundred).Round(2)
}
