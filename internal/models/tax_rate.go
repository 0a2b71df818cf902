package models

import "github.com/shopspring/decimal"

// TaxRate is one row of a property's tax configuration.
type TaxRate struct {
	PropertyID string          `json:"propertyID"`
	Name       string          `json:"name"`
	Rate       decimal.Decimal `json:"rate"`
}
