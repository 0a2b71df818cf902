package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/dto"
)

var (
	ErrFolioClosed      = errors.New("folio is closed and cannot accept postings")
	ErrNegativeEntry    = errors.New("transaction debit and credit must both be non-negative")
	ErrEmptyEntryBatch  = errors.New("at least one transaction entry is required")
	ErrInvalidEntryType = errors.New("transaction type must be CHARGE, PAYMENT or ADJUSTMENT")
)

// folioService provides the folio ledger operations.
type folioService struct {
	BaseService
	folioRepo portsrepo.FolioRepositoryFacade

	// The running-balance computation is not commutative, so writers to the
	// same folio are mutually exclusive.
	folioLocks sync.Map // folioID -> *sync.Mutex
}

// NewFolioService creates a new FolioService.
func NewFolioService(folioRepo portsrepo.FolioRepositoryFacade) portssvc.FolioSvcFacade {
	return &folioService{folioRepo: folioRepo}
}

// Ensure folioService implements the portssvc.FolioSvcFacade interface
var _ portssvc.FolioSvcFacade = (*folioService)(nil)

func (s *folioService) lockFolio(folioID string) func() {
	muIface, _ := s.folioLocks.LoadOrStore(folioID, &sync.Mutex{})
	mu := muIface.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// GetFolio retrieves a folio with its transactions, verifying tenancy.
func (s *folioService) GetFolio(ctx context.Context, propertyID, folioID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByID(ctx, folioID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio %s: %w", folioID, err)
	}
	if folio.PropertyID != propertyID {
		// Obscure existence across tenants
		return nil, apperrors.ErrNotFound
	}
	return folio, nil
}

// GetFolioByReservation retrieves the folio attached to a reservation.
func (s *folioService) GetFolioByReservation(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByReservationID(ctx, propertyID, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find folio for reservation %s: %w", reservationID, err)
	}
	return folio, nil
}

// EnsureFolio returns the reservation's folio, creating it lazily on first
// use. The folio number is derived from the opening date and room.
func (s *folioService) EnsureFolio(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Folio, error) {
	folio, err := s.folioRepo.FindFolioByReservationID(ctx, reservation.PropertyID, reservation.ReservationID)
	if err == nil {
		return folio, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up folio for reservation %s: %w", reservation.ReservationID, err)
	}

	now := time.Now().UTC()
	newFolio := domain.Folio{
		FolioID:       uuid.NewString(),
		FolioNumber:   fmt.Sprintf("F%s-%s", now.Format("20060102"), reservation.RoomNumber),
		PropertyID:    reservation.PropertyID,
		ReservationID: reservation.ReservationID,
		GuestName:     reservation.GuestName,
		RoomNumber:    reservation.RoomNumber,
		Balance:       decimal.Zero,
		CreditLimit:   decimal.Zero,
		PaymentMethod: domain.PayCash,
		Status:        domain.FolioOpen,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := s.folioRepo.SaveFolio(ctx, newFolio); err != nil {
		return nil, fmt.Errorf("failed to create folio for reservation %s: %w", reservation.ReservationID, err)
	}

	s.LogInfo(ctx, "Folio created",
		slog.String("folio_id", newFolio.FolioID),
		slog.String("reservation_id", reservation.ReservationID))
	return &newFolio, nil
}

// Post appends a single manual entry to the folio.
func (s *folioService) Post(ctx context.Context, propertyID, folioID string, req dto.PostTransactionRequest, postedBy string) (*domain.FolioTransaction, error) {
	folio, err := s.GetFolio(ctx, propertyID, folioID)
	if err != nil {
		return nil, err
	}

	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: amount must be non-zero", apperrors.ErrValidation)
	}

	entry := domain.FolioTransaction{
		Type:        domain.TransactionType(req.Type),
		Category:    req.Category,
		Description: req.Description,
	}
	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}
	entry.Date = date

	switch entry.Type {
	case domain.TxnCharge:
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: charge amount must be positive", apperrors.ErrValidation)
		}
		entry.Debit = req.Amount
		entry.Credit = decimal.Zero
	case domain.TxnPayment:
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
		}
		entry.Debit = decimal.Zero
		entry.Credit = req.Amount
	case domain.TxnAdjustment:
		// Positive adjustments debit, negative ones credit.
		if req.Amount.IsNegative() {
			entry.Debit = decimal.Zero
			entry.Credit = req.Amount.Neg()
		} else {
			entry.Debit = req.Amount
			entry.Credit = decimal.Zero
		}
	default:
		return nil, ErrInvalidEntryType
	}

	entries := []domain.FolioTransaction{entry}
	if err := s.PostEntries(ctx, folio, entries, postedBy); err != nil {
		return nil, err
	}
	return &entries[0], nil
}

// PostEntries appends the batch to the folio in order, assigning each entry
// its running-balance snapshot, and persists atomically. The folio's balance
// invariant (balance == sum(debit) - sum(credit)) holds after every entry.
func (s *folioService) PostEntries(ctx context.Context, folio *domain.Folio, entries []domain.FolioTransaction, postedBy string) error {
	if len(entries) == 0 {
		return ErrEmptyEntryBatch
	}

	unlock := s.lockFolio(folio.FolioID)
	defer unlock()

	if !folio.IsOpen() {
		return fmt.Errorf("%w: folio %s", ErrFolioClosed, folio.FolioID)
	}

	now := time.Now().UTC()
	balance := folio.Balance
	for i := range entries {
		e := &entries[i]
		if e.Debit.IsNegative() || e.Credit.IsNegative() {
			return fmt.Errorf("%w: folio %s", ErrNegativeEntry, folio.FolioID)
		}
		if e.TransactionID == "" {
			e.TransactionID = uuid.NewString()
		}
		e.FolioID = folio.FolioID
		if e.Date.IsZero() {
			e.Date = now
		}
		if e.Time == "" {
			e.Time = now.Format("15:04")
		}
		e.PostedBy = postedBy
		e.PostedAt = now

		balance = balance.Add(e.Debit).Sub(e.Credit)
		e.Balance = balance
	}

	folio.Balance = balance
	folio.Touch(postedBy, now)

	if err := s.folioRepo.AppendTransactions(ctx, *folio, entries); err != nil {
		return fmt.Errorf("failed to persist folio %s postings: %w", folio.FolioID, err)
	}
	folio.Transactions = append(folio.Transactions, entries...)

	s.LogDebug(ctx, "Folio entries posted",
		slog.String("folio_id", folio.FolioID),
		slog.Int("entries", len(entries)),
		slog.String("balance", folio.Balance.String()))
	return nil
}

// Close closes the folio. A non-zero residual balance is first driven to
// exactly zero by a synthetic adjustment (credit for a debit balance, debit
// for a credit balance). Closed folios are terminal.
func (s *folioService) Close(ctx context.Context, propertyID, folioID, reason, closedBy string) (*domain.Folio, error) {
	folio, err := s.GetFolio(ctx, propertyID, folioID)
	if err != nil {
		return nil, err
	}
	if !folio.IsOpen() {
		return nil, fmt.Errorf("%w: folio %s is already closed", apperrors.ErrConflict, folioID)
	}

	if !folio.Balance.IsZero() {
		adjustment := domain.FolioTransaction{
			Type:        domain.TxnAdjustment,
			Category:    "misc",
			Description: fmt.Sprintf("Balance adjustment on close: %s", reason),
		}
		if folio.Balance.IsPositive() {
			adjustment.Credit = folio.Balance
			adjustment.Debit = decimal.Zero
		} else {
			adjustment.Debit = folio.Balance.Neg()
			adjustment.Credit = decimal.Zero
		}
		if err := s.PostEntries(ctx, folio, []domain.FolioTransaction{adjustment}, closedBy); err != nil {
			return nil, fmt.Errorf("failed to post closing adjustment for folio %s: %w", folioID, err)
		}
	}

	now := time.Now().UTC()
	folio.Status = domain.FolioClosed
	folio.ClosedDate = &now
	folio.ClosedBy = closedBy
	folio.CloseReason = reason
	folio.Touch(closedBy, now)

	if err := s.folioRepo.UpdateFolioStatus(ctx, *folio); err != nil {
		return nil, fmt.Errorf("failed to close folio %s: %w", folioID, err)
	}

	s.LogInfo(ctx, "Folio closed",
		slog.String("folio_id", folioID),
		slog.String("reason", reason),
		slog.String("closed_by", closedBy))
	return folio, nil
}

// Statement produces the read-only guest-facing projection of the folio.
func (s *folioService) Statement(ctx context.Context, propertyID, folioID string) (*domain.FolioStatement, error) {
	folio, err := s.GetFolio(ctx, propertyID, folioID)
	if err != nil {
		return nil, err
	}

	statement := &domain.FolioStatement{
		FolioNumber:   folio.FolioNumber,
		GuestName:     folio.GuestName,
		RoomNumber:    folio.RoomNumber,
		OpenedAt:      folio.CreatedAt,
		ClosedDate:    folio.ClosedDate,
		TotalCharges:  decimal.Zero,
		TotalPayments: decimal.Zero,
	}
	for _, txn := range folio.Transactions {
		statement.Lines = append(statement.Lines, domain.FolioStatementLine{
			Date:        txn.Date,
			Time:        txn.Time,
			Description: txn.Description,
			Charges:     txn.Debit,
			Payments:    txn.Credit,
			Balance:     txn.Balance,
		})
		statement.TotalCharges = statement.TotalCharges.Add(txn.Debit)
		statement.TotalPayments = statement.TotalPayments.Add(txn.Credit)
	}
	statement.FinalBalance = statement.TotalCharges.Sub(statement.TotalPayments)

	// The projection must agree with the ledger's running balance.
	if !statement.FinalBalance.Equal(folio.Balance) {
		s.LogError(ctx, apperrors.ErrInternal, "Folio statement does not reconcile with balance",
			slog.String("folio_id", folioID),
			slog.String("statement_balance", statement.FinalBalance.String()),
			slog.String("folio_balance", folio.Balance.String()))
		return nil, fmt.Errorf("folio %s statement does not reconcile: %w", folioID, apperrors.ErrInternal)
	}
	return statement, nil
}

// ListTransactions pages through a folio's ledger.
func (s *folioService) ListTransactions(ctx context.Context, propertyID, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error) {
	if _, err := s.GetFolio(ctx, propertyID, folioID); err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = 20
	}
	txns, token, err := s.folioRepo.ListTransactionsByFolio(ctx, folioID, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for folio %s: %w", folioID, err)
	}
	return txns, token, nil
}
