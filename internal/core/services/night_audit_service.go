package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
)

// nightAuditService orchestrates the end-of-day batch for one business date.
type nightAuditService struct {
	BaseService
	propertyRepo portsrepo.PropertyRepository
	roomPoster   portssvc.RoomChargePoster
	pkgPoster    portssvc.PackagePostingSvc
	autoClose    portssvc.AutoCloseSvc
	reporting    portssvc.ReportingService
}

// NewNightAuditService creates a new NightAuditSvc.
func NewNightAuditService(
	propertyRepo portsrepo.PropertyRepository,
	roomPoster portssvc.RoomChargePoster,
	pkgPoster portssvc.PackagePostingSvc,
	autoClose portssvc.AutoCloseSvc,
	reporting portssvc.ReportingService,
) portssvc.NightAuditSvc {
	return &nightAuditService{
		propertyRepo: propertyRepo,
		roomPoster:   roomPoster,
		pkgPoster:    pkgPoster,
		autoClose:    autoClose,
		reporting:    reporting,
	}
}

// Ensure nightAuditService implements the NightAuditSvc interface
var _ portssvc.NightAuditSvc = (*nightAuditService)(nil)

// RunNightAudit runs the audit pipeline: room posting, package posting,
// auto-close, tax summary. A whole-step failure aborts the run before the
// audit marker moves; the caller retries the same date, which is safe because
// every posting path is idempotent. Per-item failures inside a step are
// already contained in that step's result and do not block the marker.
func (s *nightAuditService) RunNightAudit(ctx context.Context, propertyID string, auditDate time.Time, runBy string) (*domain.NightAuditReport, error) {
	logger := s.GetLogger(ctx).With(
		slog.String("property_id", propertyID),
		slog.String("audit_date", auditDate.Format(domain.DateLayout)))
	logger.Info("Night audit started")

	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", propertyID, err)
	}

	roomResult, err := s.roomPoster.PostRoomCharges(ctx, propertyID, auditDate)
	if err != nil {
		return nil, fmt.Errorf("room charge posting step failed: %w", err)
	}

	pkgResult, err := s.pkgPoster.PostPackageCharges(ctx, propertyID, auditDate)
	if err != nil {
		return nil, fmt.Errorf("package posting step failed: %w", err)
	}

	closeResult, err := s.autoClose.AutoCloseFolios(ctx, propertyID, auditDate)
	if err != nil {
		return nil, fmt.Errorf("auto-close step failed: %w", err)
	}

	daily, err := s.reporting.DailyRevenueReport(ctx, propertyID, auditDate)
	if err != nil {
		return nil, fmt.Errorf("tax summary step failed: %w", err)
	}

	// The audit marker is monotonic: it only ever advances, so re-running an
	// already audited date leaves it untouched.
	if property.LastAuditDate == nil || auditDate.After(*property.LastAuditDate) {
		if err := s.propertyRepo.UpdateLastAuditDate(ctx, propertyID, auditDate, runBy, time.Now().UTC()); err != nil {
			return nil, fmt.Errorf("failed to advance audit marker: %w", err)
		}
	}

	report := &domain.NightAuditReport{
		PropertyID:     propertyID,
		AuditDate:      auditDate,
		RoomPosting:    *roomResult,
		PackagePosting: *pkgResult,
		AutoClose:      *closeResult,
		TaxSummary:     daily.Taxes,
		CompletedAt:    time.Now().UTC(),
	}

	logger.Info("Night audit completed",
		slog.Int("room_posted", roomResult.Posted),
		slog.Int("package_posted", pkgResult.Posted),
		slog.Int("folios_closed", closeResult.Closed),
		slog.String("total_tax", daily.Taxes.TotalTax.String()))
	return report, nil
}

// LastAuditDate returns the property's audit marker.
func (s *nightAuditService) LastAuditDate(ctx context.Context, propertyID string) (*time.Time, error) {
	property, err := s.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", propertyID, err)
	}
	return property.LastAuditDate, nil
}
