package dto

import (
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DailyRevenueResponse is the per-date revenue report.
type DailyRevenueResponse struct {
	Date          string                     `json:"date"`
	ByCategory    map[string]decimal.Decimal `json:"byCategory"`
	ByDepartment  map[string]decimal.Decimal `json:"byDepartment"`
	TotalRevenue  decimal.Decimal            `json:"totalRevenue"`
	Taxes         TaxBreakdownResponse       `json:"taxes"`
	Payments      map[string]decimal.Decimal `json:"payments"`
	TotalPayments decimal.Decimal            `json:"totalPayments"`
}

// ManagerReportResponse adds the hospitality KPIs to the daily report.
type ManagerReportResponse struct {
	DailyRevenueResponse
	TotalRooms    int             `json:"totalRooms"`
	OccupiedRooms int             `json:"occupiedRooms"`
	Occupancy     decimal.Decimal `json:"occupancy"`
	ADR           decimal.Decimal `json:"adr"`
	RevPAR        decimal.Decimal `json:"revPAR"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// MonthlyReportResponse sums one calendar month of daily reports.
type MonthlyReportResponse struct {
	Year         int                        `json:"year"`
	Month        int                        `json:"month"`
	Days         int                        `json:"days"`
	ByCategory   map[string]decimal.Decimal `json:"byCategory"`
	ByDepartment map[string]decimal.Decimal `json:"byDepartment"`
	TotalRevenue decimal.Decimal            `json:"totalRevenue"`
	TotalTax     decimal.Decimal            `json:"totalTax"`
	NetRevenue   decimal.Decimal            `json:"netRevenue"`
	Payments     map[string]decimal.Decimal `json:"payments"`
}

func categoryMap(in map[domain.RevenueCategory]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func departmentMap(in map[domain.Department]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func paymentMap(in map[domain.PaymentMethod]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

// ToDailyRevenueResponse converts a domain.DailyRevenueReport to its DTO.
func ToDailyRevenueResponse(r *domain.DailyRevenueReport) DailyRevenueResponse {
	return DailyRevenueResponse{
		Date:          r.Date.Format(domain.DateLayout),
		ByCategory:    categoryMap(r.ByCategory),
		ByDepartment:  departmentMap(r.ByDepartment),
		TotalRevenue:  r.TotalRevenue,
		Taxes:         ToTaxBreakdownResponse(r.Taxes),
		Payments:      paymentMap(r.Payments),
		TotalPayments: r.TotalPayments,
	}
}

// ToManagerReportResponse converts a domain.ManagerReport to its DTO.
func ToManagerReportResponse(r *domain.ManagerReport) ManagerReportResponse {
	return ManagerReportResponse{
		DailyRevenueResponse: ToDailyRevenueResponse(&r.DailyRevenueReport),
		TotalRooms:           r.TotalRooms,
		OccupiedRooms:        r.OccupiedRooms,
		Occupancy:            r.Occupancy,
		ADR:                  r.ADR,
		RevPAR:               r.RevPAR,
		Outstanding:          r.Outstanding,
	}
}

// ToMonthlyReportResponse converts a domain.MonthlyReport to its DTO.
func ToMonthlyReportResponse(r *domain.MonthlyReport) MonthlyReportResponse {
	return MonthlyReportResponse{
		Year:         r.Year,
		Month:        int(r.Month),
		Days:         r.Days,
		ByCategory:   categoryMap(r.ByCategory),
		ByDepartment: departmentMap(r.ByDepartment),
		TotalRevenue: r.TotalRevenue,
		TotalTax:     r.TotalTax,
		NetRevenue:   r.NetRevenue,
		Payments:     paymentMap(r.Payments),
	}
}
