package domain

import "github.com/shopspring/decimal"

// TaxRate is one named line of the property's tax configuration.
type TaxRate struct {
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"` // Percentage, e.g. 18
}

// TaxDetail records one tax line applied to a posted transaction.
type TaxDetail struct {
	TaxType string          `json:"taxType"`
	Rate    decimal.Decimal `json:"rate"`
	Amount  decimal.Decimal `json:"amount"`
	Base    decimal.Decimal `json:"base"` // Net amount the tax was computed on
}

// TaxBreakdown decomposes a tax-inclusive gross amount into net revenue plus
// per-tax amounts.
type TaxBreakdown struct {
	PerTax     map[string]decimal.Decimal `json:"perTax"`
	TotalTax   decimal.Decimal            `json:"totalTax"`
	NetRevenue decimal.Decimal            `json:"netRevenue"`
}
