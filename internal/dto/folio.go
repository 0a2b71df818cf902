package dto

import (
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest is the manual posting entry point used by the POS
// and front-desk screens. A charge debits the folio, a payment credits it; an
// adjustment debits when the amount is positive and credits when negative.
type PostTransactionRequest struct {
	Type        string          `json:"type" binding:"required,oneof=CHARGE PAYMENT ADJUSTMENT"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *time.Time      `json:"date,omitempty"` // Business date; defaults to today
}

// CloseFolioRequest carries the closure reason for a manual close.
type CloseFolioRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RunNightAuditRequest triggers the batch for one business date.
type RunNightAuditRequest struct {
	AuditDate string `json:"auditDate" binding:"required"` // YYYY-MM-DD
}

// TaxDetailResponse is one tax line of a posted transaction.
type TaxDetailResponse struct {
	TaxType string          `json:"taxType"`
	Rate    decimal.Decimal `json:"rate"`
	Amount  decimal.Decimal `json:"amount"`
	Base    decimal.Decimal `json:"base"`
}

// TransactionResponse defines the data returned for a folio transaction.
type TransactionResponse struct {
	TransactionID  string              `json:"transactionID"`
	Date           time.Time           `json:"date"`
	Time           string              `json:"time"`
	Type           string              `json:"type"`
	Category       string              `json:"category"`
	Description    string              `json:"description"`
	Debit          decimal.Decimal     `json:"debit"`
	Credit         decimal.Decimal     `json:"credit"`
	Balance        decimal.Decimal     `json:"balance"`
	ReferenceID    *string             `json:"referenceID,omitempty"`
	NightAuditDate *string             `json:"nightAuditDate,omitempty"`
	TaxDetails     []TaxDetailResponse `json:"taxDetails,omitempty"`
}

// FolioResponse defines the data returned for a folio.
type FolioResponse struct {
	FolioID       string                `json:"folioID"`
	FolioNumber   string                `json:"folioNumber"`
	ReservationID string                `json:"reservationID"`
	GuestName     string                `json:"guestName"`
	RoomNumber    string                `json:"roomNumber"`
	Balance       decimal.Decimal       `json:"balance"`
	Status        string                `json:"status"`
	ClosedDate    *time.Time            `json:"closedDate,omitempty"`
	CloseReason   string                `json:"closeReason,omitempty"`
	Transactions  []TransactionResponse `json:"transactions,omitempty"`
}

// ListTransactionsResponse pages through a folio's ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// StatementLineResponse is one display row of a folio statement.
type StatementLineResponse struct {
	Date        time.Time       `json:"date"`
	Time        string          `json:"time"`
	Description string          `json:"description"`
	Charges     decimal.Decimal `json:"charges"`
	Payments    decimal.Decimal `json:"payments"`
	Balance     decimal.Decimal `json:"balance"`
}

// StatementResponse is the guest-facing folio statement.
type StatementResponse struct {
	FolioNumber   string                  `json:"folioNumber"`
	GuestName     string                  `json:"guestName"`
	RoomNumber    string                  `json:"roomNumber"`
	OpenedAt      time.Time               `json:"openedAt"`
	ClosedDate    *time.Time              `json:"closedDate,omitempty"`
	Lines         []StatementLineResponse `json:"lines"`
	TotalCharges  decimal.Decimal         `json:"totalCharges"`
	TotalPayments decimal.Decimal         `json:"totalPayments"`
	FinalBalance  decimal.Decimal         `json:"finalBalance"`
}

// ToTransactionResponse converts a domain.FolioTransaction to its DTO.
func ToTransactionResponse(txn *domain.FolioTransaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:  txn.TransactionID,
		Date:           txn.Date,
		Time:           txn.Time,
		Type:           string(txn.Type),
		Category:       txn.Category,
		Description:    txn.Description,
		Debit:          txn.Debit,
		Credit:         txn.Credit,
		Balance:        txn.Balance,
		ReferenceID:    txn.ReferenceID,
		NightAuditDate: txn.NightAuditDate,
	}
	for _, td := range txn.TaxDetails {
		resp.TaxDetails = append(resp.TaxDetails, TaxDetailResponse{
			TaxType: td.TaxType,
			Rate:    td.Rate,
			Amount:  td.Amount,
			Base:    td.Base,
		})
	}
	return resp
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.FolioTransaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}

// ToFolioResponse converts a domain.Folio to its DTO.
func ToFolioResponse(f *domain.Folio) FolioResponse {
	return FolioResponse{
		FolioID:       f.FolioID,
		FolioNumber:   f.FolioNumber,
		ReservationID: f.ReservationID,
		GuestName:     f.GuestName,
		RoomNumber:    f.RoomNumber,
		Balance:       f.Balance,
		Status:        string(f.Status),
		ClosedDate:    f.ClosedDate,
		CloseReason:   f.CloseReason,
		Transactions:  ToTransactionResponses(f.Transactions),
	}
}

// ToStatementResponse converts a domain.FolioStatement to its DTO.
func ToStatementResponse(s *domain.FolioStatement) StatementResponse {
	lines := make([]StatementLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = StatementLineResponse{
			Date:        l.Date,
			Time:        l.Time,
			Description: l.Description,
			Charges:     l.Charges,
			Payments:    l.Payments,
			Balance:     l.Balance,
		}
	}
	return StatementResponse{
		FolioNumber:   s.FolioNumber,
		GuestName:     s.GuestName,
		RoomNumber:    s.RoomNumber,
		OpenedAt:      s.OpenedAt,
		ClosedDate:    s.ClosedDate,
		Lines:         lines,
		TotalCharges:  s.TotalCharges,
		TotalPayments: s.TotalPayments,
		FinalBalance:  s.FinalBalance,
	}
}
