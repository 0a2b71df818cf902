package pgsql

import (
	"context"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaxRateRepository struct {
	BaseRepository
}

// newPgxTaxRateRepository creates a new repository for tax configuration.
func newPgxTaxRateRepository(pool *pgxpool.Pool) portsrepo.TaxRateRepository {
	return &PgxTaxRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTaxRateRepository implements portsrepo.TaxRateRepository
var _ portsrepo.TaxRateRepository = (*PgxTaxRateRepository)(nil)

// FindRatesByProperty retrieves the property's named tax rates. An empty
// result is not an error; callers fall back to the default table.
func (r *PgxTaxRateRepository) FindRatesByProperty(ctx context.Context, propertyID string) ([]domain.TaxRate, error) {
	query := `SELECT name, rate FROM tax_rates WHERE property_id = $1 ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax rates for property "+propertyID, err)
	}
	defer rows.Close()

	rates := []domain.TaxRate{}
	for rows.Next() {
		var rate domain.TaxRate
		if err := rows.Scan(&rate.Name, &rate.Rate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax rate row for property "+propertyID, err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax rate rows for property "+propertyID, err)
	}
	return rates, nil
}
