package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/dto"
)

// MockFolioRepository is a mock implementation of portsrepo.FolioRepositoryFacade.
type MockFolioRepository struct {
	mock.Mock
}

func (m *MockFolioRepository) FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error) {
	args := m.Called(ctx, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) FindFolioByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) ListOpenFolios(ctx context.Context, propertyID string) ([]domain.Folio, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) ListOpenFolioBalances(ctx context.Context, propertyID string) ([]domain.Folio, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Folio), args.Error(1)
}

func (m *MockFolioRepository) ListTransactionsByFolio(ctx context.Context, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error) {
	args := m.Called(ctx, folioID, limit, nextToken)
	var txns []domain.FolioTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.FolioTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockFolioRepository) FindTransactionsByDate(ctx context.Context, propertyID string, date time.Time) ([]domain.FolioTransaction, error) {
	args := m.Called(ctx, propertyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FolioTransaction), args.Error(1)
}

func (m *MockFolioRepository) ReferenceExists(ctx context.Context, referenceID string) (bool, error) {
	args := m.Called(ctx, referenceID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolioRepository) SaveFolio(ctx context.Context, folio domain.Folio) error {
	args := m.Called(ctx, folio)
	return args.Error(0)
}

func (m *MockFolioRepository) AppendTransactions(ctx context.Context, folio domain.Folio, transactions []domain.FolioTransaction) error {
	args := m.Called(ctx, folio, transactions)
	return args.Error(0)
}

func (m *MockFolioRepository) UpdateFolioStatus(ctx context.Context, folio domain.Folio) error {
	args := m.Called(ctx, folio)
	return args.Error(0)
}

// MockReservationRepository is a mock implementation of portsrepo.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) ListByProperty(ctx context.Context, propertyID string) ([]domain.Reservation, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, propertyID, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

// MockPackageRepository is a mock implementation of portsrepo.ReservationPackageRepository.
type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindByReservationID(ctx context.Context, propertyID, reservationID string) (*domain.ReservationPackage, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationPackage), args.Error(1)
}

func (m *MockPackageRepository) SaveReservationPackage(ctx context.Context, assignment domain.ReservationPackage) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockPackageRepository) UpdatePostedDates(ctx context.Context, assignment domain.ReservationPackage) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

// MockTaxRateRepository is a mock implementation of portsrepo.TaxRateRepository.
type MockTaxRateRepository struct {
	mock.Mock
}

func (m *MockTaxRateRepository) FindRatesByProperty(ctx context.Context, propertyID string) ([]domain.TaxRate, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxRate), args.Error(1)
}

// MockPropertyRepository is a mock implementation of portsrepo.PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Property), args.Error(1)
}

func (m *MockPropertyRepository) UpdateLastAuditDate(ctx context.Context, propertyID string, auditDate time.Time, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, propertyID, auditDate, updatedBy, updatedAt)
	return args.Error(0)
}

// MockFolioService is a mock implementation of portssvc.FolioSvcFacade.
type MockFolioService struct {
	mock.Mock
}

func (m *MockFolioService) GetFolio(ctx context.Context, propertyID, folioID string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) GetFolioByReservation(ctx context.Context, propertyID, reservationID string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) EnsureFolio(ctx context.Context, reservation domain.Reservation, userID string) (*domain.Folio, error) {
	args := m.Called(ctx, reservation, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) Post(ctx context.Context, propertyID, folioID string, req dto.PostTransactionRequest, postedBy string) (*domain.FolioTransaction, error) {
	args := m.Called(ctx, propertyID, folioID, req, postedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioTransaction), args.Error(1)
}

func (m *MockFolioService) PostEntries(ctx context.Context, folio *domain.Folio, entries []domain.FolioTransaction, postedBy string) error {
	args := m.Called(ctx, folio, entries, postedBy)
	return args.Error(0)
}

func (m *MockFolioService) Close(ctx context.Context, propertyID, folioID, reason, closedBy string) (*domain.Folio, error) {
	args := m.Called(ctx, propertyID, folioID, reason, closedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Folio), args.Error(1)
}

func (m *MockFolioService) Statement(ctx context.Context, propertyID, folioID string) (*domain.FolioStatement, error) {
	args := m.Called(ctx, propertyID, folioID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FolioStatement), args.Error(1)
}

func (m *MockFolioService) ListTransactions(ctx context.Context, propertyID, folioID string, limit int, nextToken *string) ([]domain.FolioTransaction, *string, error) {
	args := m.Called(ctx, propertyID, folioID, limit, nextToken)
	var txns []domain.FolioTransaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.FolioTransaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

// MockRoomPoster is a mock implementation of portssvc.RoomChargePoster.
type MockRoomPoster struct {
	mock.Mock
}

func (m *MockRoomPoster) PostRoomCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error) {
	args := m.Called(ctx, propertyID, auditDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

// MockPackagePoster is a mock implementation of portssvc.PackagePostingSvc.
type MockPackagePoster struct {
	mock.Mock
}

func (m *MockPackagePoster) PostPackageCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error) {
	args := m.Called(ctx, propertyID, auditDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PostingResult), args.Error(1)
}

// MockAutoCloseService is a mock implementation of portssvc.AutoCloseSvc.
type MockAutoCloseService struct {
	mock.Mock
}

func (m *MockAutoCloseService) AutoCloseFolios(ctx context.Context, propertyID string, auditDate time.Time) (*domain.AutoCloseResult, error) {
	args := m.Called(ctx, propertyID, auditDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutoCloseResult), args.Error(1)
}

// MockReportingService is a mock implementation of portssvc.ReportingService.
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DailyRevenueReport(ctx context.Context, propertyID string, date time.Time) (*domain.DailyRevenueReport, error) {
	args := m.Called(ctx, propertyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRevenueReport), args.Error(1)
}

func (m *MockReportingService) ManagerReport(ctx context.Context, propertyID string, date time.Time) (*domain.ManagerReport, error) {
	args := m.Called(ctx, propertyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ManagerReport), args.Error(1)
}

func (m *MockReportingService) MonthlyReport(ctx context.Context, propertyID string, year int, month time.Month) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, propertyID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}
