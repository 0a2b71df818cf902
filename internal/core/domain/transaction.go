package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a folio ledger entry.
type TransactionType string

const (
	TxnCharge     TransactionType = "CHARGE"
	TxnPayment    TransactionType = "PAYMENT"
	TxnAdjustment TransactionType = "ADJUSTMENT"
)

// FolioTransaction is one append-only ledger entry on a folio. Exactly one of
// Debit/Credit is normally non-zero and both are >= 0. Balance is the folio's
// running balance immediately after this entry was applied; it is a
// point-in-time snapshot and is never recomputed later.
type FolioTransaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	FolioID        string          `json:"folioID"`
	Date           time.Time       `json:"date"` // Business date of the charge
	Time           string          `json:"time"` // Wall-clock HH:MM for display
	Type           TransactionType `json:"type"`
	Category       string          `json:"category"` // room, food, beverage, spa, ...
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"` // Snapshot after applying this entry
	PostedBy       string          `json:"postedBy"`
	PostedAt       time.Time       `json:"postedAt"`
	ReferenceID    *string         `json:"referenceID,omitempty"`    // Idempotency key for audit postings
	NightAuditDate *string         `json:"nightAuditDate,omitempty"` // YYYY-MM-DD when posted by the night audit
	TaxDetails     []TaxDetail     `json:"taxDetails,omitempty"`
}

// PostingReference builds the idempotency key for a night-audit posting.
// No two transactions may ever share the same reference.
func PostingReference(source, reservationID string, auditDate time.Time, componentID string) string {
	ref := fmt.Sprintf("%s-%s-%s", source, reservationID, auditDate.Format(DateLayout))
	if componentID != "" {
		ref = ref + "-" + componentID
	}
	return ref
}
