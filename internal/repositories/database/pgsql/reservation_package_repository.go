package pgsql

import (
	"context"
	"errors"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	"github.com/amphorabeer/pms_backend/internal/models"
	"github.com/amphorabeer/pms_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReservationPackageRepository struct {
	BaseRepository
}

// newPgxReservationPackageRepository creates a new repository for package
// assignments.
func newPgxReservationPackageRepository(pool *pgxpool.Pool) portsrepo.ReservationPackageRepository {
	return &PgxReservationPackageRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReservationPackageRepository implements portsrepo.ReservationPackageRepository
var _ portsrepo.ReservationPackageRepository = (*PgxReservationPackageRepository)(nil)

// FindByReservationID retrieves the package assignment for a reservation.
func (r *PgxReservationPackageRepository) FindByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.ReservationPackage, error) {
	query := `
		SELECT reservation_id, property_id, package_id, adults, children,
		       start_date, end_date, posted_dates, consumptions,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM reservation_packages
		WHERE property_id = $1 AND reservation_id = $2;
	`
	var m models.ReservationPackage
	err := r.Pool.QueryRow(ctx, query, propertyID, reservationID).Scan(
		&m.ReservationID,
		&m.PropertyID,
		&m.PackageID,
		&m.Adults,
		&m.Children,
		&m.StartDate,
		&m.EndDate,
		&m.PostedDates,
		&m.Consumptions,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find package assignment for reservation "+reservationID, err)
	}

	assignment, err := mapping.ToDomainReservationPackage(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map package assignment for reservation "+reservationID, err)
	}
	return &assignment, nil
}

// SaveReservationPackage inserts a new package assignment.
func (r *PgxReservationPackageRepository) SaveReservationPackage(ctx context.Context, assignment domain.ReservationPackage) error {
	m, err := mapping.ToModelReservationPackage(assignment)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map package assignment for reservation "+assignment.ReservationID, err)
	}

	query := `
		INSERT INTO reservation_packages (
			reservation_id, property_id, package_id, adults, children,
			start_date, end_date, posted_dates, consumptions,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ReservationID,
		m.PropertyID,
		m.PackageID,
		m.Adults,
		m.Children,
		m.StartDate,
		m.EndDate,
		m.PostedDates,
		m.Consumptions,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert package assignment for reservation "+m.ReservationID, err)
	}
	return nil
}

// UpdatePostedDates persists the assignment's posted-dates ledger.
func (r *PgxReservationPackageRepository) UpdatePostedDates(ctx context.Context, assignment domain.ReservationPackage) error {
	query := `
		UPDATE reservation_packages
		SET posted_dates = $3,
		    last_updated_at = $4,
		    last_updated_by = $5
		WHERE property_id = $1 AND reservation_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		assignment.PropertyID,
		assignment.ReservationID,
		assignment.PostedDates,
		assignment.LastUpdatedAt,
		assignment.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update posted dates for reservation "+assignment.ReservationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
