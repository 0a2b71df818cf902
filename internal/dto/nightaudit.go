package dto

import (
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostingDetailResponse is one per-reservation row of a batch summary.
type PostingDetailResponse struct {
	ReservationID string          `json:"reservationID"`
	RoomNumber    string          `json:"roomNumber,omitempty"`
	GuestName     string          `json:"guestName,omitempty"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	Error         string          `json:"error,omitempty"`
}

// PostingResultResponse summarizes a batch posting step.
type PostingResultResponse struct {
	Posted      int                     `json:"posted"`
	Failed      int                     `json:"failed"`
	Skipped     int                     `json:"skipped"`
	TotalAmount decimal.Decimal         `json:"totalAmount"`
	Details     []PostingDetailResponse `json:"details"`
}

// AutoCloseResultResponse summarizes the auto-close scan.
type AutoCloseResultResponse struct {
	Closed  int                      `json:"closed"`
	Skipped int                      `json:"skipped"`
	Errors  int                      `json:"errors"`
	Details []domain.AutoCloseDetail `json:"details"`
}

// TaxBreakdownResponse decomposes a tax-inclusive amount.
type TaxBreakdownResponse struct {
	PerTax     map[string]decimal.Decimal `json:"perTax"`
	TotalTax   decimal.Decimal            `json:"totalTax"`
	NetRevenue decimal.Decimal            `json:"netRevenue"`
}

// NightAuditResponse is the consolidated report of one audit run.
type NightAuditResponse struct {
	PropertyID     string                  `json:"propertyID"`
	AuditDate      string                  `json:"auditDate"`
	RoomPosting    PostingResultResponse   `json:"roomPosting"`
	PackagePosting PostingResultResponse   `json:"packagePosting"`
	AutoClose      AutoCloseResultResponse `json:"autoClose"`
	TaxSummary     TaxBreakdownResponse    `json:"taxSummary"`
	CompletedAt    time.Time               `json:"completedAt"`
}

// ToPostingResultResponse converts a domain.PostingResult to its DTO.
func ToPostingResultResponse(r domain.PostingResult) PostingResultResponse {
	details := make([]PostingDetailResponse, len(r.Details))
	for i, d := range r.Details {
		details[i] = PostingDetailResponse{
			ReservationID: d.ReservationID,
			RoomNumber:    d.RoomNumber,
			GuestName:     d.GuestName,
			Status:        d.Status,
			Amount:        d.Amount,
			Error:         d.Error,
		}
	}
	return PostingResultResponse{
		Posted:      r.Posted,
		Failed:      r.Failed,
		Skipped:     r.Skipped,
		TotalAmount: r.TotalAmount,
		Details:     details,
	}
}

// ToTaxBreakdownResponse converts a domain.TaxBreakdown to its DTO.
func ToTaxBreakdownResponse(b domain.TaxBreakdown) TaxBreakdownResponse {
	return TaxBreakdownResponse{
		PerTax:     b.PerTax,
		TotalTax:   b.TotalTax,
		NetRevenue: b.NetRevenue,
	}
}

// ToNightAuditResponse converts a domain.NightAuditReport to its DTO.
func ToNightAuditResponse(r *domain.NightAuditReport) NightAuditResponse {
	return NightAuditResponse{
		PropertyID:     r.PropertyID,
		AuditDate:      r.AuditDate.Format(domain.DateLayout),
		RoomPosting:    ToPostingResultResponse(r.RoomPosting),
		PackagePosting: ToPostingResultResponse(r.PackagePosting),
		AutoClose: AutoCloseResultResponse{
			Closed:  r.AutoClose.Closed,
			Skipped: r.AutoClose.Skipped,
			Errors:  r.AutoClose.Errors,
			Details: r.AutoClose.Details,
		},
		TaxSummary:  ToTaxBreakdownResponse(r.TaxSummary),
		CompletedAt: r.CompletedAt,
	}
}
