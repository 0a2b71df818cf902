package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostingDetail is one per-reservation row of a batch posting summary.
type PostingDetail struct {
	ReservationID string          `json:"reservationID"`
	RoomNumber    string          `json:"roomNumber,omitempty"`
	GuestName     string          `json:"guestName,omitempty"`
	Status        string          `json:"status"` // posted, failed or skipped
	Amount        decimal.Decimal `json:"amount"`
	Error         string          `json:"error,omitempty"`
}

// PostingResult summarizes a batch posting step. Per-item failures are
// contained here rather than aborting the batch.
type PostingResult struct {
	Posted      int             `json:"posted"`
	Failed      int             `json:"failed"`
	Skipped     int             `json:"skipped"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Details     []PostingDetail `json:"details"`
}

// AutoCloseDetail is one per-folio row of the auto-close scan summary.
type AutoCloseDetail struct {
	FolioID     string `json:"folioID"`
	FolioNumber string `json:"folioNumber"`
	Reason      string `json:"reason,omitempty"`
	Error       string `json:"error,omitempty"`
}

// AutoCloseResult summarizes an auto-close scan.
type AutoCloseResult struct {
	Closed  int               `json:"closed"`
	Skipped int               `json:"skipped"`
	Errors  int               `json:"errors"`
	Details []AutoCloseDetail `json:"details"`
}

// NightAuditReport is the consolidated output of one audit run.
type NightAuditReport struct {
	PropertyID     string          `json:"propertyID"`
	AuditDate      time.Time       `json:"auditDate"`
	RoomPosting    PostingResult   `json:"roomPosting"`
	PackagePosting PostingResult   `json:"packagePosting"`
	AutoClose      AutoCloseResult `json:"autoClose"`
	TaxSummary     TaxBreakdown    `json:"taxSummary"`
	CompletedAt    time.Time       `json:"completedAt"`
}

// FolioStatementLine is one display row of a folio statement.
type FolioStatementLine struct {
	Date        time.Time       `json:"date"`
	Time        string          `json:"time"`
	Description string          `json:"description"`
	Charges     decimal.Decimal `json:"charges"`
	Payments    decimal.Decimal `json:"payments"`
	Balance     decimal.Decimal `json:"balance"`
}

// FolioStatement is the read-only guest-facing projection of a folio.
type FolioStatement struct {
	FolioNumber   string               `json:"folioNumber"`
	GuestName     string               `json:"guestName"`
	RoomNumber    string               `json:"roomNumber"`
	OpenedAt      time.Time            `json:"openedAt"`
	ClosedDate    *time.Time           `json:"closedDate,omitempty"`
	Lines         []FolioStatementLine `json:"lines"`
	TotalCharges  decimal.Decimal      `json:"totalCharges"`
	TotalPayments decimal.Decimal      `json:"totalPayments"`
	FinalBalance  decimal.Decimal      `json:"finalBalance"` // Must equal the folio's balance
}
