package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	"github.com/amphorabeer/pms_backend/internal/models"
	"github.com/amphorabeer/pms_backend/internal/utils/mapping"
	"github.com/amphorabeer/pms_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFolioRepository struct {
	BaseRepository
}

// newPgxFolioRepository creates a new repository for folio and ledger data.
func newPgxFolioRepository(pool *pgxpool.Pool) portsrepo.FolioRepositoryWithTx {
	return &PgxFolioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxFolioRepository implements portsrepo.FolioRepositoryWithTx
var _ portsrepo.FolioRepositoryWithTx = (*PgxFolioRepository)(nil)

const folioColumns = `
	folio_id, folio_number, property_id, reservation_id, guest_name, room_number,
	balance, credit_limit, payment_method, status,
	closed_date, closed_by, close_reason,
	created_at, created_by, last_updated_at, last_updated_by
`

const txnColumns = `
	transaction_id, folio_id, txn_date, txn_time, txn_type, category, description,
	debit, credit, balance, posted_by, posted_at, reference_id, night_audit_date, tax_details
`

func scanFolioRow(row pgx.Row) (models.Folio, error) {
	var m models.Folio
	err := row.Scan(
		&m.FolioID,
		&m.FolioNumber,
		&m.PropertyID,
		&m.ReservationID,
		&m.GuestName,
		&m.RoomNumber,
		&m.Balance,
		&m.CreditLimit,
		&m.PaymentMethod,
		&m.Status,
		&m.ClosedDate,
		&m.ClosedBy,
		&m.CloseReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func scanTxnRows(rows pgx.Rows) ([]models.FolioTransaction, error) {
	txns := []models.FolioTransaction{}
	for rows.Next() {
		var t models.FolioTransaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.FolioID,
			&t.TxnDate,
			&t.TxnTime,
			&t.TxnType,
			&t.Category,
			&t.Description,
			&t.Debit,
			&t.Credit,
			&t.Balance,
			&t.PostedBy,
			&t.PostedAt,
			&t.ReferenceID,
			&t.NightAuditDate,
			&t.TaxDetails,
		); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// FindFolioByID retrieves a folio with its full transaction list.
func (r *PgxFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM folios WHERE folio_id = $1;`
	m, err := scanFolioRow(r.Pool.QueryRow(ctx, query, folioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find folio by ID "+folioID, err)
	}

	folio := mapping.ToDomainFolio(m)
	txns, err := r.findTransactionsForFolio(ctx, folioID)
	if err != nil {
		return nil, err
	}
	folio.Transactions = txns
	return &folio, nil
}

// FindFolioByReservationID retrieves the folio attached to a reservation.
func (r *PgxFolioRepository) FindFolioByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM folios WHERE property_id = $1 AND reservation_id = $2;`
	m, err := scanFolioRow(r.Pool.QueryRow(ctx, query, propertyID, reservationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find folio for reservation "+reservationID, err)
	}

	folio := mapping.ToDomainFolio(m)
	txns, err := r.findTransactionsForFolio(ctx, folio.FolioID)
	if err != nil {
		return nil, err
	}
	folio.Transactions = txns
	return &folio, nil
}

// findTransactionsForFolio loads a folio's ledger in chronological order.
func (r *PgxFolioRepository) findTransactionsForFolio(ctx context.Context, folioID string) ([]domain.FolioTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM folio_transactions WHERE folio_id = $1 ORDER BY posted_at, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, folioID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for folio "+folioID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTxnRows(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transaction rows for folio "+folioID, err)
	}
	txns, err := mapping.ToDomainFolioTransactionSlice(modelTxns)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transactions for folio "+folioID, err)
	}
	return txns, nil
}

// ListOpenFolios retrieves every open folio of the property with its ledger.
// The transactions of all folios are fetched in one pass and grouped in
// memory.
func (r *PgxFolioRepository) ListOpenFolios(ctx context.Context, propertyID string) ([]domain.Folio, error) {
	folios, err := r.ListOpenFolioBalances(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if len(folios) == 0 {
		return folios, nil
	}

	folioIDs := make([]string, len(folios))
	indexByID := make(map[string]int, len(folios))
	for i := range folios {
		folioIDs[i] = folios[i].FolioID
		indexByID[folios[i].FolioID] = i
	}

	query := `SELECT ` + txnColumns + ` FROM folio_transactions WHERE folio_id = ANY($1) ORDER BY folio_id, posted_at, transaction_id;`
	rows, err := r.Pool.Query(ctx, query, folioIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for open folios of property "+propertyID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTxnRows(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transaction rows for open folios of property "+propertyID, err)
	}
	for _, m := range modelTxns {
		d, mapErr := mapping.ToDomainFolioTransaction(m)
		if mapErr != nil {
			return nil, apperrors.NewAppError(500, "failed to map transaction "+m.TransactionID, mapErr)
		}
		if i, ok := indexByID[d.FolioID]; ok {
			folios[i].Transactions = append(folios[i].Transactions, d)
		}
	}
	return folios, nil
}

// ListOpenFolioBalances returns the open folios without their ledgers.
func (r *PgxFolioRepository) ListOpenFolioBalances(ctx context.Context, propertyID string) ([]domain.Folio, error) {
	query := `SELECT ` + folioColumns + ` FROM folios WHERE property_id = $1 AND status = 'OPEN' ORDER BY folio_number;`
	rows, err := r.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query open folios for property "+propertyID, err)
	}
	defer rows.Close()

	folios := []domain.Folio{}
	for rows.Next() {
		m, scanErr := scanFolioRow(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan folio row for property "+propertyID, scanErr)
		}
		folios = append(folios, mapping.ToDomainFolio(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating folio rows for property "+propertyID, err)
	}
	return folios, nil
}

// ListTransactionsByFolio retrieves a paginated slice of a folio's ledger
// using token-based pagination. It returns the transactions, a token for the
// next page, and an error.
func (r *PgxFolioRepository) ListTransactionsByFolio(ctx context.Context, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + txnColumns + ` FROM folio_transactions WHERE folio_id = $1`
	// Ordering is crucial and must be stable: txn_date DESC with posted_at
	// DESC as the tie-breaker.
	orderByClause := `ORDER BY txn_date DESC, posted_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{folioID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastPostedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison is concise and efficient in Postgres
		cursorClause := `AND (txn_date, posted_at) < ($2, $3)`
		args = append(args, lastDate, lastPostedAt)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}

	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for folio "+folioID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTxnRows(rows)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan transaction rows for folio "+folioID, err)
	}

	// Determine the next token
	var nextTokenVal *string
	results := modelTxns
	if len(modelTxns) > limit {
		// The token points to the last item included in this response page;
		// the next query starts after it.
		lastTxn := modelTxns[limit-1]
		token := pagination.EncodeToken(lastTxn.TxnDate, lastTxn.PostedAt)
		nextTokenVal = &token
		results = modelTxns[:limit]
	}

	txns, err := mapping.ToDomainFolioTransactionSlice(results)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to map transactions for folio "+folioID, err)
	}
	return txns, nextTokenVal, nil
}

// FindTransactionsByDate retrieves all transactions across the property's
// folios for one business date.
func (r *PgxFolioRepository) FindTransactionsByDate(ctx context.Context, propertyID string, date time.Time) ([]domain.FolioTransaction, error) {
	query := `
		SELECT t.transaction_id, t.folio_id, t.txn_date, t.txn_time, t.txn_type, t.category, t.description,
		       t.debit, t.credit, t.balance, t.posted_by, t.posted_at, t.reference_id, t.night_audit_date, t.tax_details
		FROM folio_transactions t
		JOIN folios f ON t.folio_id = f.folio_id
		WHERE f.property_id = $1 AND t.txn_date = $2
		ORDER BY t.posted_at, t.transaction_id;
	`
	rows, err := r.Pool.Query(ctx, query, propertyID, date)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions by date for property "+propertyID, err)
	}
	defer rows.Close()

	modelTxns, err := scanTxnRows(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transaction rows by date for property "+propertyID, err)
	}
	txns, err := mapping.ToDomainFolioTransactionSlice(modelTxns)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transactions by date for property "+propertyID, err)
	}
	return txns, nil
}

// ReferenceExists reports whether any transaction carries the posting
// reference.
func (r *PgxFolioRepository) ReferenceExists(ctx context.Context, referenceID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM folio_transactions WHERE reference_id = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, referenceID).Scan(&exists); err != nil {
		return false, apperrors.NewAppError(500, "failed to check posting reference "+referenceID, err)
	}
	return exists, nil
}

const insertFolioQuery = `
	INSERT INTO folios (
		folio_id, folio_number, property_id, reservation_id, guest_name, room_number,
		balance, credit_limit, payment_method, status,
		closed_date, closed_by, close_reason,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
`

const insertTxnQuery = `
	INSERT INTO folio_transactions (
		transaction_id, folio_id, txn_date, txn_time, txn_type, category, description,
		debit, credit, balance, posted_by, posted_at, reference_id, night_audit_date, tax_details
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
`

func queueTxnInsert(batch *pgx.Batch, m models.FolioTransaction) {
	batch.Queue(insertTxnQuery,
		m.TransactionID,
		m.FolioID,
		m.TxnDate,
		m.TxnTime,
		m.TxnType,
		m.Category,
		m.Description,
		m.Debit,
		m.Credit,
		m.Balance,
		m.PostedBy,
		m.PostedAt,
		m.ReferenceID,
		m.NightAuditDate,
		m.TaxDetails,
	)
}

// SaveFolio inserts a new folio together with any initial transactions within
// a DB transaction.
func (r *PgxFolioRepository) SaveFolio(ctx context.Context, folio domain.Folio) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelFolio(folio)
	_, err = tx.Exec(ctx, insertFolioQuery,
		m.FolioID,
		m.FolioNumber,
		m.PropertyID,
		m.ReservationID,
		m.GuestName,
		m.RoomNumber,
		m.Balance,
		m.CreditLimit,
		m.PaymentMethod,
		m.Status,
		m.ClosedDate,
		m.ClosedBy,
		m.CloseReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert folio "+m.FolioID, err)
	}

	if len(folio.Transactions) > 0 {
		batch := &pgx.Batch{}
		for _, txn := range folio.Transactions {
			modelTxn, mapErr := mapping.ToModelFolioTransaction(txn)
			if mapErr != nil {
				return apperrors.NewAppError(500, "failed to map transaction for folio "+m.FolioID, mapErr)
			}
			queueTxnInsert(batch, modelTxn)
		}
		br := tx.SendBatch(ctx, batch)
		if err := br.Close(); err != nil {
			return apperrors.NewAppError(500, "failed to execute transaction batch for folio "+m.FolioID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// AppendTransactions atomically inserts the ledger entries and updates the
// folio's balance and audit fields to the caller-computed values.
func (r *PgxFolioRepository) AppendTransactions(ctx context.Context, folio domain.Folio, transactions []domain.FolioTransaction) error {
	if len(transactions) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, txn := range transactions {
		modelTxn, mapErr := mapping.ToModelFolioTransaction(txn)
		if mapErr != nil {
			return apperrors.NewAppError(500, "failed to map transaction for folio "+folio.FolioID, mapErr)
		}
		queueTxnInsert(batch, modelTxn)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute transaction batch for folio "+folio.FolioID, err)
	}

	updateQuery := `
		UPDATE folios
		SET balance = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE folio_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		folio.FolioID,
		folio.Balance,
		folio.LastUpdatedAt,
		folio.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update balance for folio "+folio.FolioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// UpdateFolioStatus marks a folio closed with its closure metadata.
func (r *PgxFolioRepository) UpdateFolioStatus(ctx context.Context, folio domain.Folio) error {
	m := mapping.ToModelFolio(folio)
	query := `
		UPDATE folios
		SET status = $2,
		    closed_date = $3,
		    closed_by = $4,
		    close_reason = $5,
		    last_updated_at = $6,
		    last_updated_by = $7
		WHERE folio_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FolioID,
		m.Status,
		m.ClosedDate,
		m.ClosedBy,
		m.CloseReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for folio "+m.FolioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
