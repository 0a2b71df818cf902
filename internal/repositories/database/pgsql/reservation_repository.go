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

type PgxReservationRepository struct {
	BaseRepository
}

// newPgxReservationRepository creates a read-only repository over the
// inventory manager's reservation table. Rows are normalized into the
// canonical domain shape at this boundary.
func newPgxReservationRepository(pool *pgxpool.Pool) portsrepo.ReservationRepository {
	return &PgxReservationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReservationRepository implements portsrepo.ReservationRepository
var _ portsrepo.ReservationRepository = (*PgxReservationRepository)(nil)

const reservationColumns = `
	reservation_id, property_id, room_number, guest_name,
	check_in, check_out, status, adults, children, room_rate::text
`

func scanReservationRow(row pgx.Row) (models.Reservation, error) {
	var m models.Reservation
	err := row.Scan(
		&m.ReservationID,
		&m.PropertyID,
		&m.RoomNumber,
		&m.GuestName,
		&m.CheckIn,
		&m.CheckOut,
		&m.Status,
		&m.Adults,
		&m.Children,
		&m.RoomRate,
	)
	return m, err
}

// ListByProperty retrieves every reservation of the property.
func (r *PgxReservationRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE property_id = $1 ORDER BY check_in, reservation_id;`
	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reservations for property "+propertyID, err)
	}
	defer rows.Close()

	reservations := []models.Reservation{}
	for rows.Next() {
		m, scanErr := scanReservationRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reservation row for property "+propertyID, scanErr)
		}
		reservations = append(reservations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reservation rows for property "+propertyID, err)
	}

	return mapping.ToDomainReservationSlice(reservations), nil
}

// FindByID retrieves a single reservation.
func (r *PgxReservationRepository) FindByID(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE property_id = $1 AND reservation_id = $2;`
	m, err := scanReservationRow(r.Pool.QueryRow(ctx, query, propertyID, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reservation "+reservationID, err)
	}

	reservation := mapping.ToDomainReservation(m)
	return &reservation, nil
}
