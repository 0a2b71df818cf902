package repositories

import (
	"context"
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// FolioReader defines read operations for folio data.
type FolioReader interface {
	// FindFolioByID retrieves a folio with its full transaction list.
	FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error)

	// FindFolioByReservationID retrieves the folio attached to a reservation,
	// or apperrors.ErrNotFound when the stay has no folio yet.
	FindFolioByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error)

	// ListOpenFolios retrieves every open folio for the property, each with
	// its transactions (the auto-close rules need balances and last activity).
	ListOpenFolios(ctx context.Context, propertyID string) ([]domain.Folio, error)

	// ListOpenFolioBalances returns the balances of all open folios without
	// loading transactions, for outstanding-balance reporting.
	ListOpenFolioBalances(ctx context.Context, propertyID string) ([]domain.Folio, error)

	// ListTransactionsByFolio retrieves a paginated slice of a folio's ledger
	// using token-based pagination.
	ListTransactionsByFolio(ctx context.Context, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error)

	// FindTransactionsByDate retrieves all transactions across the property's
	// folios whose business date matches the given day.
	FindTransactionsByDate(ctx context.Context, propertyID string, date time.Time) ([]domain.FolioTransaction, error)

	// ReferenceExists reports whether any transaction already carries the
	// given posting reference. Posting engines use it to guard re-runs.
	ReferenceExists(ctx context.Context, referenceID string) (bool, error)
}

// FolioWriter defines write operations for folio data.
type FolioWriter interface {
	// SaveFolio inserts a new folio together with any initial transactions.
	SaveFolio(ctx context.Context, folio domain.Folio) error

	// AppendTransactions atomically inserts the given ledger entries and
	// updates the folio's balance and audit fields to match.
	AppendTransactions(ctx context.Context, folio domain.Folio, transactions []domain.FolioTransaction) error

	// UpdateFolioStatus marks a folio closed with its closure metadata.
	UpdateFolioStatus(ctx context.Context, folio domain.Folio) error
}

// FolioRepositoryFacade combines all folio-related repository interfaces.
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
}

// FolioRepositoryWithTx extends FolioRepositoryFacade with transaction capabilities.
type FolioRepositoryWithTx interface {
	FolioRepositoryFacade
	TransactionManager
}
