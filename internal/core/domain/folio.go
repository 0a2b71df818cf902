package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio is the running billing account for one guest stay. It is created
// lazily by the first posting path that needs it and is never deleted, only
// closed. Closed folios are terminal.
type Folio struct {
	FolioID       string          `json:"folioID"`     // Primary Key (UUID)
	FolioNumber   string          `json:"folioNumber"` // Human readable, derived from date + room
	PropertyID    string          `json:"propertyID"`
	ReservationID string          `json:"reservationID"`
	GuestName     string          `json:"guestName"`  // Denormalized for display
	RoomNumber    string          `json:"roomNumber"` // Denormalized for display
	Balance       decimal.Decimal `json:"balance"`    // Invariant: sum(debit) - sum(credit)
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Status        FolioStatus     `json:"status"`
	ClosedDate    *time.Time      `json:"closedDate,omitempty"`
	ClosedBy      string          `json:"closedBy,omitempty"`
	CloseReason   string          `json:"closeReason,omitempty"`
	Transactions  []FolioTransaction `json:"transactions,omitempty"` // Append-only, insertion order = chronological order
	AuditFields
}

// IsOpen reports whether the folio can still accept postings.
func (f *Folio) IsOpen() bool {
	return f.Status == FolioOpen
}

// LastTransactionDate returns the business date of the most recent
// transaction, or the zero time if the folio has none.
func (f *Folio) LastTransactionDate() time.Time {
	if len(f.Transactions) == 0 {
		return time.Time{}
	}
	return f.Transactions[len(f.Transactions)-1].Date
}
