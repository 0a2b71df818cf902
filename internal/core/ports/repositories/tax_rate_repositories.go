package repositories

import (
	"context"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// TaxRateRepository reads the property's named-rate tax table. Callers fall
// back to the default table when the result is empty or malformed.
type TaxRateRepository interface {
	FindRatesByProperty(ctx context.Context, propertyID string) ([]domain.TaxRate, error)
}
