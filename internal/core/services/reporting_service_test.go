package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockFolioRepo *MockFolioRepository
	mockResRepo   *MockReservationRepository
	mockTaxRepo   *MockTaxRateRepository
	mockPropRepo  *MockPropertyRepository
	service       portssvc.ReportingService
	ctx           context.Context
	date          time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockFolioRepo = new(MockFolioRepository)
	suite.mockResRepo = new(MockReservationRepository)
	suite.mockTaxRepo = new(MockTaxRateRepository)
	suite.mockPropRepo = new(MockPropertyRepository)
	suite.service = services.NewReportingService(
		suite.mockFolioRepo, suite.mockResRepo, suite.mockTaxRepo, suite.mockPropRepo)
	suite.ctx = context.Background()
	suite.date = time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)
}

func charge(category, amount string) domain.FolioTransaction {
	return domain.FolioTransaction{
		Type:     domain.TxnCharge,
		Category: category,
		Debit:    decimal.RequireFromString(amount),
		Credit:   decimal.Zero,
	}
}

func payment(method, amount string) domain.FolioTransaction {
	return domain.FolioTransaction{
		Type:     domain.TxnPayment,
		Category: method,
		Debit:    decimal.Zero,
		Credit:   decimal.RequireFromString(amount),
	}
}

func (suite *ReportingServiceTestSuite) TestDailyRevenueReport_Aggregation() {
	txns := []domain.FolioTransaction{
		charge("room", "200"),
		charge("food", "50"),
		charge("Giftshop", "30"),
		payment("CARD", "100"),
		payment("cash", "20"),
		{Type: domain.TxnAdjustment, Category: "misc", Debit: decimal.RequireFromString("15"), Credit: decimal.Zero},
	}
	rates := []domain.TaxRate{{Name: "City Tax", Rate: decimal.NewFromInt(20)}}
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, suite.date).Return(txns, nil).Once()
	suite.mockTaxRepo.On("FindRatesByProperty", suite.ctx, testPropertyID).Return(rates, nil).Once()

	report, err := suite.service.DailyRevenueReport(suite.ctx, testPropertyID, suite.date)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.RequireFromString("280")))
	suite.True(report.ByCategory[domain.CategoryRoom].Equal(decimal.RequireFromString("200")))
	suite.True(report.ByCategory[domain.CategoryFood].Equal(decimal.RequireFromString("50")))
	suite.True(report.ByCategory[domain.CategoryMisc].Equal(decimal.RequireFromString("30")))
	suite.True(report.ByCategory[domain.CategorySpa].IsZero())
	suite.True(report.ByDepartment[domain.DeptRooms].Equal(decimal.RequireFromString("200")))
	suite.True(report.ByDepartment[domain.DeptFB].Equal(decimal.RequireFromString("50")))
	suite.True(report.ByDepartment[domain.DeptOther].Equal(decimal.RequireFromString("30")))
	suite.True(report.Payments[domain.PayCard].Equal(decimal.RequireFromString("100")))
	suite.True(report.Payments[domain.PayCash].Equal(decimal.RequireFromString("20")))
	suite.True(report.TotalPayments.Equal(decimal.RequireFromString("120")))
	suite.True(report.Taxes.NetRevenue.Equal(decimal.RequireFromString("233.33")))
	suite.True(report.Taxes.PerTax["City Tax"].Equal(decimal.RequireFromString("46.67")))
	suite.mockFolioRepo.AssertExpectations(suite.T())
	suite.mockTaxRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDailyRevenueReport_TaxConfigFailure_FallsBack() {
	txns := []domain.FolioTransaction{charge("room", "128")}
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, suite.date).Return(txns, nil).Once()
	suite.mockTaxRepo.On("FindRatesByProperty", suite.ctx, testPropertyID).Return(nil, assert.AnError).Once()

	report, err := suite.service.DailyRevenueReport(suite.ctx, testPropertyID, suite.date)

	suite.Require().NoError(err)
	suite.True(report.Taxes.NetRevenue.Equal(decimal.RequireFromString("100")))
	suite.True(report.Taxes.PerTax["VAT"].Equal(decimal.RequireFromString("18")))
	suite.True(report.Taxes.PerTax["Service"].Equal(decimal.RequireFromString("10")))
	suite.True(report.Taxes.TotalTax.Equal(decimal.RequireFromString("28")))
}

func (suite *ReportingServiceTestSuite) TestDailyRevenueReport_LedgerFailure() {
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, suite.date).Return(nil, assert.AnError).Once()

	report, err := suite.service.DailyRevenueReport(suite.ctx, testPropertyID, suite.date)

	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ReportingServiceTestSuite) TestManagerReport_KPIs() {
	txns := []domain.FolioTransaction{charge("room", "400")}
	inHouse := domain.Reservation{
		ReservationID: "RES-1", PropertyID: testPropertyID, Status: domain.ResCheckedIn,
		CheckIn:  suite.date.AddDate(0, 0, -1),
		CheckOut: suite.date.AddDate(0, 0, 2),
	}
	inHouse2 := inHouse
	inHouse2.ReservationID = "RES-2"
	departed := inHouse
	departed.ReservationID = "RES-3"
	departed.Status = domain.ResCheckedOut
	openFolios := []domain.Folio{
		{FolioID: "FOLIO-1", Balance: decimal.RequireFromString("120.50")},
		{FolioID: "FOLIO-2", Balance: decimal.RequireFromString("-30")},
	}

	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, suite.date).Return(txns, nil).Once()
	suite.mockTaxRepo.On("FindRatesByProperty", suite.ctx, testPropertyID).Return([]domain.TaxRate{}, nil).Once()
	suite.mockPropRepo.On("FindByID", suite.ctx, testPropertyID).Return(&domain.Property{PropertyID: testPropertyID, TotalRooms: 10}, nil).Once()
	suite.mockResRepo.On("ListByProperty", suite.ctx, testPropertyID).Return([]domain.Reservation{inHouse, inHouse2, departed}, nil).Once()
	suite.mockFolioRepo.On("ListOpenFolioBalances", suite.ctx, testPropertyID).Return(openFolios, nil).Once()

	report, err := suite.service.ManagerReport(suite.ctx, testPropertyID, suite.date)

	suite.Require().NoError(err)
	suite.Equal(10, report.TotalRooms)
	suite.Equal(2, report.OccupiedRooms)
	suite.True(report.Occupancy.Equal(decimal.RequireFromString("0.2")))
	suite.True(report.ADR.Equal(decimal.RequireFromString("200")))
	suite.True(report.RevPAR.Equal(decimal.RequireFromString("40")))
	suite.True(report.Outstanding.Equal(decimal.RequireFromString("120.50")))
	suite.mockFolioRepo.AssertExpectations(suite.T())
	suite.mockPropRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestManagerReport_EmptyHouse_GuardsDivision() {
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, suite.date).Return([]domain.FolioTransaction{}, nil).Once()
	suite.mockTaxRepo.On("FindRatesByProperty", suite.ctx, testPropertyID).Return([]domain.TaxRate{}, nil).Once()
	suite.mockPropRepo.On("FindByID", suite.ctx, testPropertyID).Return(&domain.Property{PropertyID: testPropertyID, TotalRooms: 0}, nil).Once()
	suite.mockResRepo.On("ListByProperty", suite.ctx, testPropertyID).Return([]domain.Reservation{}, nil).Once()
	suite.mockFolioRepo.On("ListOpenFolioBalances", suite.ctx, testPropertyID).Return([]domain.Folio{}, nil).Once()

	report, err := suite.service.ManagerReport(suite.ctx, testPropertyID, suite.date)

	suite.Require().NoError(err)
	suite.True(report.Occupancy.IsZero())
	suite.True(report.ADR.IsZero())
	suite.True(report.RevPAR.IsZero())
	suite.True(report.Outstanding.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_SumsDailyReports() {
	txns := []domain.FolioTransaction{charge("room", "100")}
	rates := []domain.TaxRate{{Name: "VAT", Rate: decimal.NewFromInt(25)}}
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, mock.AnythingOfType("time.Time")).Return(txns, nil).Times(30)
	suite.mockTaxRepo.On("FindRatesByProperty", suite.ctx, testPropertyID).Return(rates, nil).Times(30)

	report, err := suite.service.MonthlyReport(suite.ctx, testPropertyID, 2025, time.September)

	suite.Require().NoError(err)
	suite.Equal(30, report.Days)
	suite.True(report.TotalRevenue.Equal(decimal.RequireFromString("3000")))
	suite.True(report.TotalTax.Equal(decimal.RequireFromString("600")))
	suite.True(report.NetRevenue.Equal(decimal.RequireFromString("2400")))
	suite.True(report.ByCategory[domain.CategoryRoom].Equal(decimal.RequireFromString("3000")))
	suite.mockFolioRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlyReport_DailyFailure_Propagates() {
	suite.mockFolioRepo.On("FindTransactionsByDate", suite.ctx, testPropertyID, mock.AnythingOfType("time.Time")).Return(nil, assert.AnError).Once()

	report, err := suite.service.MonthlyReport(suite.ctx, testPropertyID, 2025, time.September)

	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
