package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	"github.com/amphorabeer/pms_backend/internal/models"
	"github.com/amphorabeer/pms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPropertyRepository struct {
	BaseRepository
}

// newPgxPropertyRepository creates a new repository for property records.
func newPgxPropertyRepository(pool *pgxpool.Pool) portsrepo.PropertyRepository {
	return &PgxPropertyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxPropertyRepository implements portsrepo.PropertyRepository
var _ portsrepo.PropertyRepository = (*PgxPropertyRepository)(nil)

// FindByID retrieves the property record.
func (r *PgxPropertyRepository) FindByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `
		SELECT property_id, name, total_rooms, last_audit_date,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM properties
		WHERE property_id = $1;
	`
	var m models.Property
	err := r.Pool.QueryRow(ctx, query, propertyID).Scan(
		&m.PropertyID,
		&m.Name,
		&m.TotalRooms,
		&m.LastAuditDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find property "+propertyID, err)
	}

	property := mapping.ToDomainProperty(m)
	return &property, nil
}

// UpdateLastAuditDate advances the property's audit marker. The WHERE clause
// enforces monotonicity even under concurrent runs.
func (r *PgxPropertyRepository) UpdateLastAuditDate(ctx context.Context, propertyID string, auditDate time.Time, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE properties
		SET last_audit_date = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE property_id = $1
		  AND (last_audit_date IS NULL OR last_audit_date < $2);
	`
	// Zero rows affected means the marker is already at or past this date;
	// that is a valid no-op, not an error.
	_, err := r.Pool.Exec(ctx, query, propertyID, auditDate, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update audit marker for property "+propertyID, err)
	}
	return nil
}
