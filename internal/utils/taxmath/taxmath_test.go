package taxmath_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/utils/taxmath"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestBreakdown_DefaultRates(t *testing.T) {
	// 680 gross at 18% VAT + 10% service: net 531.25, each line rounded
	// independently to 2 decimals.
	result := taxmath.Breakdown(dec("680"), taxmath.DefaultRates())

	assert.True(t, result.NetRevenue.Equal(dec("531.25")), "net was %s", result.NetRevenue)
	assert.True(t, result.PerTax["VAT"].Equal(dec("95.63")), "VAT was %s", result.PerTax["VAT"])
	assert.True(t, result.PerTax["Service"].Equal(dec("53.13")), "service was %s", result.PerTax["Service"])
	assert.True(t, result.TotalTax.Equal(dec("148.76")), "total tax was %s", result.TotalTax)

	// Per-line rounding drift stays within one cent per tax line.
	drift := result.NetRevenue.Add(result.TotalTax).Sub(dec("680")).Abs()
	assert.True(t, drift.LessThanOrEqual(dec("0.02")), "drift was %s", drift)
}

func TestBreakdown_SingleRate(t *testing.T) {
	rates := []domain.TaxRate{{Name: "VAT", Rate: decimal.NewFromInt(25)}}

	result := taxmath.Breakdown(dec("100"), rates)

	assert.True(t, result.NetRevenue.Equal(dec("80")))
	assert.True(t, result.PerTax["VAT"].Equal(dec("20")))
	assert.True(t, result.TotalTax.Equal(dec("20")))
}

func TestBreakdown_ZeroGross(t *testing.T) {
	result := taxmath.Breakdown(decimal.Zero, taxmath.DefaultRates())

	assert.True(t, result.NetRevenue.IsZero())
	assert.True(t, result.TotalTax.IsZero())
	assert.Empty(t, result.PerTax)
}

func TestBreakdown_ZeroTotalRate(t *testing.T) {
	rates := []domain.TaxRate{{Name: "Exempt", Rate: decimal.Zero}}

	result := taxmath.Breakdown(dec("250"), rates)

	assert.True(t, result.NetRevenue.Equal(dec("250")))
	assert.True(t, result.TotalTax.IsZero())
}

func TestBreakdown_MalformedRates_FallBack(t *testing.T) {
	rates := []domain.TaxRate{{Name: "Bad", Rate: decimal.NewFromInt(-5)}}

	result := taxmath.Breakdown(dec("128"), rates)

	// Falls back to the 18 + 10 default table.
	assert.True(t, result.NetRevenue.Equal(dec("100")))
	assert.True(t, result.PerTax["VAT"].Equal(dec("18")))
	assert.True(t, result.PerTax["Service"].Equal(dec("10")))
}

func TestSanitizeRates(t *testing.T) {
	valid := []domain.TaxRate{{Name: "GST", Rate: decimal.NewFromInt(7)}}
	assert.Equal(t, valid, taxmath.SanitizeRates(valid))

	defaults := taxmath.DefaultRates()
	assert.Equal(t, defaults, taxmath.SanitizeRates(nil))
	assert.Equal(t, defaults, taxmath.SanitizeRates([]domain.TaxRate{}))
	assert.Equal(t, defaults, taxmath.SanitizeRates([]domain.TaxRate{{Name: "", Rate: decimal.NewFromInt(5)}}))
	assert.Equal(t, defaults, taxmath.SanitizeRates([]domain.TaxRate{{Name: "Neg", Rate: decimal.NewFromInt(-1)}}))
}

func TestAddOn(t *testing.T) {
	require.True(t, taxmath.AddOn(dec("62.5"), decimal.NewFromInt(18)).Equal(dec("11.25")))
	require.True(t, taxmath.AddOn(dec("125"), decimal.NewFromInt(18)).Equal(dec("22.50")))
	require.True(t, taxmath.AddOn(decimal.Zero, decimal.NewFromInt(18)).IsZero())
	require.True(t, taxmath.AddOn(dec("100"), decimal.Zero).IsZero())
}
