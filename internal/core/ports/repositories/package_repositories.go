package repositories

import (
	"context"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// ReservationPackageRepository persists package assignments and their
// posted-dates idempotency ledger.
type ReservationPackageRepository interface {
	// FindByReservationID retrieves the package assignment for a reservation,
	// or apperrors.ErrNotFound when the stay has none.
	FindByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.ReservationPackage, error)

	// SaveReservationPackage inserts a new package assignment.
	SaveReservationPackage(ctx context.Context, assignment domain.ReservationPackage) error

	// UpdatePostedDates persists the assignment's posted-dates ledger after a
	// successful night-audit posting.
	UpdatePostedDates(ctx context.Context, assignment domain.ReservationPackage) error
}
