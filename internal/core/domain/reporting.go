package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RevenueCategory is the fixed bucket set revenue is grouped into. Unknown
// raw categories fold into CategoryMisc.
type RevenueCategory string

const (
	CategoryRoom      RevenueCategory = "room"
	CategoryFood      RevenueCategory = "food"
	CategoryBeverage  RevenueCategory = "beverage"
	CategorySpa       RevenueCategory = "spa"
	CategoryLaundry   RevenueCategory = "laundry"
	CategoryTransport RevenueCategory = "transport"
	CategoryPhone     RevenueCategory = "phone"
	CategoryMinibar   RevenueCategory = "minibar"
	CategoryExtras    RevenueCategory = "extras"
	CategoryMisc      RevenueCategory = "misc"
)

// RevenueCategories lists every bucket in report order.
var RevenueCategories = []RevenueCategory{
	CategoryRoom, CategoryFood, CategoryBeverage, CategorySpa, CategoryLaundry,
	CategoryTransport, CategoryPhone, CategoryMinibar, CategoryExtras, CategoryMisc,
}

// CategoryOf maps a raw transaction category to its report bucket. It is
// total: anything unrecognised lands in misc.
func CategoryOf(raw string) RevenueCategory {
	switch RevenueCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryRoom:
		return CategoryRoom
	case CategoryFood:
		return CategoryFood
	case CategoryBeverage:
		return CategoryBeverage
	case CategorySpa:
		return CategorySpa
	case CategoryLaundry:
		return CategoryLaundry
	case CategoryTransport:
		return CategoryTransport
	case CategoryPhone:
		return CategoryPhone
	case CategoryMinibar:
		return CategoryMinibar
	case CategoryExtras:
		return CategoryExtras
	default:
		return CategoryMisc
	}
}

// Department groups revenue buckets for departmental reporting.
type Department string

const (
	DeptRooms Department = "ROOMS"
	DeptFB    Department = "F&B"
	DeptSpa   Department = "SPA"
	DeptOther Department = "OTHER"
)

// Departments lists every department in report order.
var Departments = []Department{DeptRooms, DeptFB, DeptSpa, DeptOther}

// DepartmentOf maps a revenue bucket to its department.
func DepartmentOf(category RevenueCategory) Department {
	switch category {
	case CategoryRoom:
		return DeptRooms
	case CategoryFood, CategoryBeverage, CategoryMinibar:
		return DeptFB
	case CategorySpa:
		return DeptSpa
	default:
		return DeptOther
	}
}

// PaymentMethod is the fixed bucket set for settlement reporting.
type PaymentMethod string

const (
	PayCash    PaymentMethod = "cash"
	PayCard    PaymentMethod = "card"
	PayBank    PaymentMethod = "bank"
	PayCompany PaymentMethod = "company"
	PayDebit   PaymentMethod = "debit"
	PayOnline  PaymentMethod = "online"
	PayVoucher PaymentMethod = "voucher"
	PayDeposit PaymentMethod = "deposit"
)

// PaymentMethods lists every settlement bucket in report order.
var PaymentMethods = []PaymentMethod{
	PayCash, PayCard, PayBank, PayCompany, PayDebit, PayOnline, PayVoucher, PayDeposit,
}

// PaymentMethodOf maps a raw payment method to its bucket, defaulting to cash.
func PaymentMethodOf(raw string) PaymentMethod {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(raw))) {
	case PayCard:
		return PayCard
	case PayBank:
		return PayBank
	case PayCompany:
		return PayCompany
	case PayDebit:
		return PayDebit
	case PayOnline:
		return PayOnline
	case PayVoucher:
		return PayVoucher
	case PayDeposit:
		return PayDeposit
	default:
		return PayCash
	}
}

// DailyRevenueReport is the per-date revenue aggregate derived from posted
// charges. TotalRevenue is tax-inclusive; Taxes backs the tax out of it.
type DailyRevenueReport struct {
	Date         time.Time                           `json:"date"`
	ByCategory   map[RevenueCategory]decimal.Decimal `json:"byCategory"`
	ByDepartment map[Department]decimal.Decimal      `json:"byDepartment"`
	TotalRevenue decimal.Decimal                     `json:"totalRevenue"`
	Taxes        TaxBreakdown                        `json:"taxes"`
	Payments     map[PaymentMethod]decimal.Decimal   `json:"payments"`
	TotalPayments decimal.Decimal                    `json:"totalPayments"`
}

// ManagerReport extends the daily revenue report with the standard
// hospitality KPIs.
type ManagerReport struct {
	DailyRevenueReport
	TotalRooms    int             `json:"totalRooms"`
	OccupiedRooms int             `json:"occupiedRooms"`
	Occupancy     decimal.Decimal `json:"occupancy"` // occupiedRooms / totalRooms
	ADR           decimal.Decimal `json:"adr"`       // roomRevenue / occupiedRooms
	RevPAR        decimal.Decimal `json:"revPAR"`    // roomRevenue / totalRooms
	Outstanding   decimal.Decimal `json:"outstanding"` // Sum of positive open folio balances
}

// MonthlyReport sums the daily revenue reports of one calendar month.
type MonthlyReport struct {
	Year         int                                 `json:"year"`
	Month        time.Month                          `json:"month"`
	Days         int                                 `json:"days"`
	ByCategory   map[RevenueCategory]decimal.Decimal `json:"byCategory"`
	ByDepartment map[Department]decimal.Decimal      `json:"byDepartment"`
	TotalRevenue decimal.Decimal                     `json:"totalRevenue"`
	TotalTax     decimal.Decimal                     `json:"totalTax"`
	NetRevenue   decimal.Decimal                     `json:"netRevenue"`
	Payments     map[PaymentMethod]decimal.Decimal   `json:"payments"`
}
