package repositories

import (
	"context"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// ReservationRepository is the boundary to the inventory manager's
// reservation store. Implementations normalize whatever shape the store uses
// into the canonical domain.Reservation; the core never sees raw rows.
type ReservationRepository interface {
	// ListByProperty retrieves every reservation of the property.
	ListByProperty(ctx context.Context, propertyID string) ([]domain.Reservation, error)

	// FindByID retrieves a single reservation.
	FindByID(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, error)
}
