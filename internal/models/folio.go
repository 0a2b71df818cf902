package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio row.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio is the persisted shape of a guest billing account.
type Folio struct {
	FolioID       string          `json:"folioID"` // Primary Key (UUID)
	FolioNumber   string          `json:"folioNumber"`
	PropertyID    string          `json:"propertyID"`
	ReservationID string          `json:"reservationID"`
	GuestName     string          `json:"guestName"`
	RoomNumber    string          `json:"roomNumber"`
	Balance       decimal.Decimal `json:"balance"`
	CreditLimit   decimal.Decimal `json:"creditLimit"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        FolioStatus     `json:"status"`
	ClosedDate    *time.Time      `json:"closedDate,omitempty"`
	ClosedBy      *string         `json:"closedBy,omitempty"`
	CloseReason   *string         `json:"closeReason,omitempty"`
	AuditFields
}

// FolioTransaction is the persisted shape of one ledger entry. TaxDetails is
// stored as a JSONB document.
type FolioTransaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	FolioID        string          `json:"folioID"`
	TxnDate        time.Time       `json:"txnDate"`
	TxnTime        string          `json:"txnTime"`
	TxnType        string          `json:"txnType"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	Balance        decimal.Decimal `json:"balance"`
	PostedBy       string          `json:"postedBy"`
	PostedAt       time.Time       `json:"postedAt"`
	ReferenceID    *string         `json:"referenceID,omitempty"`
	NightAuditDate *string         `json:"nightAuditDate,omitempty"`
	TaxDetails     []byte          `json:"taxDetails,omitempty"` // JSONB payload
}
