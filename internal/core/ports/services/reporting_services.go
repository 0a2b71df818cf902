package services

import (
	"context"
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// ReportingService derives the financial reports from the ledger and
// reservation data. It only reads; reports can always be rebuilt.
type ReportingService interface {
	// DailyRevenueReport aggregates the date's posted charges by category and
	// department, backs the tax out of the tax-inclusive total, and joins the
	// payment-method summary.
	DailyRevenueReport(ctx context.Context, propertyID string, date time.Time) (*domain.DailyRevenueReport, error)

	// ManagerReport extends the daily report with occupancy, ADR, RevPAR and
	// outstanding balances.
	ManagerReport(ctx context.Context, propertyID string, date time.Time) (*domain.ManagerReport, error)

	// MonthlyReport sums the daily reports of one calendar month.
	MonthlyReport(ctx context.Context, propertyID string, year int, month time.Month) (*domain.MonthlyReport, error)
}
