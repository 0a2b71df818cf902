package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/utils/taxmath"
)

// reportingService derives the financial reports from the ledger and
// reservation data.
type reportingService struct {
	BaseService
	folioRepo       portsrepo.FolioReader
	reservationRepo portsrepo.ReservationRepository
	taxRateRepo     portsrepo.TaxRateRepository
	propertyRepo    portsrepo.PropertyRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	folioRepo portsrepo.FolioReader,
	reservationRepo portsrepo.ReservationRepository,
	taxRateRepo portsrepo.TaxRateRepository,
	propertyRepo portsrepo.PropertyRepository,
) portssvc.ReportingService {
	return &reportingService{
		folioRepo:       folioRepo,
		reservationRepo: reservationRepo,
		taxRateRepo:     taxRateRepo,
		propertyRepo:    propertyRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// taxRates loads the property's rate table, falling back to the default
// table on any failure. Bad tax configuration is recovered locally and never
// surfaced to report consumers.
func (s *reportingService) taxRates(ctx context.Context, propertyID string) []domain.TaxRate {
	rates, err := s.taxRateRepo.FindRatesByProperty(ctx, propertyID)
	if err != nil {
		s.LogWarn(ctx, "Tax configuration unavailable, using defaults",
			slog.String("property_id", propertyID),
			slog.String("error", err.Error()))
		return taxmath.DefaultRates()
	}
	return taxmath.SanitizeRates(rates)
}

// DailyRevenueReport aggregates the date's posted charges into the fixed
// category and department buckets, treats the total as tax-inclusive, and
// joins the payment-method summary.
func (s *reportingService) DailyRevenueReport(ctx context.Context, propertyID string, date time.Time) (*domain.DailyRevenueReport, error) {
	txns, err := s.folioRepo.FindTransactionsByDate(ctx, propertyID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for daily report",
			slog.String("property_id", propertyID),
			slog.String("date", date.Format(domain.DateLayout)))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	report := &domain.DailyRevenueReport{
		Date:          date,
		ByCategory:    make(map[domain.RevenueCategory]decimal.Decimal, len(domain.RevenueCategories)),
		ByDepartment:  make(map[domain.Department]decimal.Decimal, len(domain.Departments)),
		Payments:      make(map[domain.PaymentMethod]decimal.Decimal, len(domain.PaymentMethods)),
		TotalRevenue:  decimal.Zero,
		TotalPayments: decimal.Zero,
	}
	for _, c := range domain.RevenueCategories {
		report.ByCategory[c] = decimal.Zero
	}
	for _, d := range domain.Departments {
		report.ByDepartment[d] = decimal.Zero
	}
	for _, p := range domain.PaymentMethods {
		report.Payments[p] = decimal.Zero
	}

	for _, txn := range txns {
		switch txn.Type {
		case domain.TxnCharge:
			// Adjustments and non-positive amounts never count as revenue.
			if !txn.Debit.IsPositive() {
				continue
			}
			category := domain.CategoryOf(txn.Category)
			report.ByCategory[category] = report.ByCategory[category].Add(txn.Debit)
			department := domain.DepartmentOf(category)
			report.ByDepartment[department] = report.ByDepartment[department].Add(txn.Debit)
			report.TotalRevenue = report.TotalRevenue.Add(txn.Debit)
		case domain.TxnPayment:
			if !txn.Credit.IsPositive() {
				continue
			}
			// POS screens record the settlement method in the category field.
			method := domain.PaymentMethodOf(txn.Category)
			report.Payments[method] = report.Payments[method].Add(txn.Credit)
			report.TotalPayments = report.TotalPayments.Add(txn.Credit)
		}
	}

	report.Taxes = taxmath.Breakdown(report.TotalRevenue, s.taxRates(ctx, propertyID))

	s.LogInfo(ctx, "Daily revenue report generated",
		slog.String("property_id", propertyID),
		slog.String("date", date.Format(domain.DateLayout)),
		slog.String("total_revenue", report.TotalRevenue.String()))
	return report, nil
}

// ManagerReport extends the daily report with occupancy, ADR, RevPAR and
// outstanding balances.
func (s *reportingService) ManagerReport(ctx context.Context, propertyID string, date time.Time) (*domain.ManagerReport, error) {
	daily, err := s.DailyRevenueReport(ctx, propertyID, date)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", propertyID, err)
	}

	reservations, err := s.reservationRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	occupied := 0
	for _, res := range reservations {
		if res.InHouseOn(date) {
			occupied++
		}
	}

	openFolios, err := s.folioRepo.ListOpenFolioBalances(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load open folio balances: %w", err)
	}
	outstanding := decimal.Zero
	for _, f := range openFolios {
		if f.Balance.IsPositive() {
			outstanding = outstanding.Add(f.Balance)
		}
	}

	report := &domain.ManagerReport{
		DailyRevenueReport: *daily,
		TotalRooms:         property.TotalRooms,
		OccupiedRooms:      occupied,
		Occupancy:          decimal.Zero,
		ADR:                decimal.Zero,
		RevPAR:             decimal.Zero,
		Outstanding:        outstanding,
	}

	roomRevenue := daily.ByCategory[domain.CategoryRoom]
	if property.TotalRooms > 0 {
		totalRooms := decimal.NewFromInt(int64(property.TotalRooms))
		report.Occupancy = decimal.NewFromInt(int64(occupied)).Div(totalRooms).Round(4)
		report.RevPAR = roomRevenue.Div(totalRooms).Round(2)
	}
	if occupied > 0 {
		report.ADR = roomRevenue.Div(decimal.NewFromInt(int64(occupied))).Round(2)
	}

	s.LogInfo(ctx, "Manager report generated",
		slog.String("property_id", propertyID),
		slog.String("date", date.Format(domain.DateLayout)),
		slog.Int("occupied_rooms", occupied))
	return report, nil
}

// MonthlyReport iterates the daily report across the calendar month and sums
// the results.
func (s *reportingService) MonthlyReport(ctx context.Context, propertyID string, year int, month time.Month) (*domain.MonthlyReport, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	report := &domain.MonthlyReport{
		Year:         year,
		Month:        month,
		Days:         days,
		ByCategory:   make(map[domain.RevenueCategory]decimal.Decimal, len(domain.RevenueCategories)),
		ByDepartment: make(map[domain.Department]decimal.Decimal, len(domain.Departments)),
		Payments:     make(map[domain.PaymentMethod]decimal.Decimal, len(domain.PaymentMethods)),
		TotalRevenue: decimal.Zero,
		TotalTax:     decimal.Zero,
		NetRevenue:   decimal.Zero,
	}
	for _, c := range domain.RevenueCategories {
		report.ByCategory[c] = decimal.Zero
	}
	for _, d := range domain.Departments {
		report.ByDepartment[d] = decimal.Zero
	}
	for _, p := range domain.PaymentMethods {
		report.Payments[p] = decimal.Zero
	}

	for day := 0; day < days; day++ {
		daily, err := s.DailyRevenueReport(ctx, propertyID, first.AddDate(0, 0, day))
		if err != nil {
			return nil, fmt.Errorf("failed to build daily report for day %d: %w", day+1, err)
		}
		for c, v := range daily.ByCategory {
			report.ByCategory[c] = report.ByCategory[c].Add(v)
		}
		for d, v := range daily.ByDepartment {
			report.ByDepartment[d] = report.ByDepartment[d].Add(v)
		}
		for p, v := range daily.Payments {
			report.Payments[p] = report.Payments[p].Add(v)
		}
		report.TotalRevenue = report.TotalRevenue.Add(daily.TotalRevenue)
		report.TotalTax = report.TotalTax.Add(daily.Taxes.TotalTax)
		report.NetRevenue = report.NetRevenue.Add(daily.Taxes.NetRevenue)
	}

	s.LogInfo(ctx, "Monthly report generated",
		slog.String("property_id", propertyID),
		slog.Int("year", year),
		slog.String("month", month.String()),
		slog.String("total_revenue", report.TotalRevenue.String()))
	return report, nil
}
