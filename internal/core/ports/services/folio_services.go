package services

import (
	"context"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/dto"
)

// FolioSvcFacade exposes the folio ledger operations: posting, closing and
// statement generation. The running-balance computation is not commutative,
// so implementations must serialize writes per folio.
type FolioSvcFacade interface {
	// GetFolio retrieves a folio with its transactions.
	GetFolio(ctx context.Context, propertyID, folioID string) (*domain.Folio, error)

	// GetFolioByReservation retrieves the folio attached to a reservation.
	GetFolioByReservation(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error)

	// EnsureFolio returns the reservation's folio, creating it lazily when
	// the reservation has no billing account yet.
	EnsureFolio(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Folio, error)

	// Post appends a single charge/payment/adjustment to the folio,
	// recomputing the running balance.
	Post(ctx context.Context, propertyID, folioID string, req dto.PostTransactionRequest, postedBy string) (*domain.FolioTransaction, error)

	// PostEntries appends a batch of pre-built ledger entries to the folio in
	// order, assigning each its running-balance snapshot, and persists
	// atomically. Entry IDs and balances are filled in by the service.
	PostEntries(ctx context.Context, folio *domain.Folio, entries []domain.FolioTransaction, postedBy string) error

	// Close closes the folio, first posting a synthetic adjustment that
	// drives any residual balance to exactly zero. Closed folios are terminal.
	Close(ctx context.Context, propertyID, folioID, reason, closedBy string) (*domain.Folio, error)

	// Statement produces the read-only guest-facing projection of the folio.
	Statement(ctx context.Context, propertyID, folioID string) (*domain.FolioStatement, error)

	// ListTransactions pages through a folio's ledger.
	ListTransactions(ctx context.Context, propertyID, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error)
}
