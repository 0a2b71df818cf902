package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
)

// creditBalanceInactivityDays is the inactivity window after which a folio
// holding a credit balance is closed out.
const creditBalanceInactivityDays = 30

// autoCloseService scans open folios and closes those matching the closure
// rules.
type autoCloseService struct {
	BaseService
	folioRepo       portsrepo.FolioReader
	reservationRepo portsrepo.ReservationRepository
	folioSvc        portssvc.FolioSvcFacade
}

// NewAutoCloseService creates a new AutoCloseSvc.
func NewAutoCloseService(
	folioRepo portsrepo.FolioReader,
	reservationRepo portsrepo.ReservationRepository,
	folioSvc portssvc.FolioSvcFacade,
) portssvc.AutoCloseSvc {
	return &autoCloseService{
		folioRepo:       folioRepo,
		reservationRepo: reservationRepo,
		folioSvc:        folioSvc,
	}
}

// Ensure autoCloseService implements the AutoCloseSvc interface
var _ portssvc.AutoCloseSvc = (*autoCloseService)(nil)

// AutoCloseFolios evaluates the closure rules against every open folio.
// First match wins; folios matching no rule stay open. Per-folio failures are
// contained and the scan continues.
func (s *autoCloseService) AutoCloseFolios(ctx context.Context, propertyID string, auditDate time.Time) (*domain.AutoCloseResult, error) {
	folios, err := s.folioRepo.ListOpenFolios(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list open folios for auto-close",
			slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to list open folios: %w", err)
	}

	result := &domain.AutoCloseResult{}
	for i := range folios {
		folio := &folios[i]

		reservation, err := s.reservationRepo.FindByID(ctx, propertyID, folio.ReservationID)
		if err != nil {
			// The reservation source being unable to answer is not this
			// engine's fault; leave the folio for the next run.
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogWarn(ctx, "Reservation lookup failed during auto-close, skipping folio",
					slog.String("folio_id", folio.FolioID),
					slog.String("error", err.Error()))
			}
			result.Skipped++
			continue
		}

		reason, matched := s.closureReason(folio, reservation, auditDate)
		if !matched {
			result.Skipped++
			continue
		}

		if _, err := s.folioSvc.Close(ctx, propertyID, folio.FolioID, reason, AuditActor); err != nil {
			s.LogError(ctx, err, "Failed to auto-close folio",
				slog.String("folio_id", folio.FolioID),
				slog.String("reason", reason))
			result.Errors++
			result.Details = append(result.Details, domain.AutoCloseDetail{
				FolioID:     folio.FolioID,
				FolioNumber: folio.FolioNumber,
				Error:       err.Error(),
			})
			continue
		}

		result.Closed++
		result.Details = append(result.Details, domain.AutoCloseDetail{
			FolioID:     folio.FolioID,
			FolioNumber: folio.FolioNumber,
			Reason:      reason,
		})
	}

	s.LogInfo(ctx, "Auto-close scan completed",
		slog.String("property_id", propertyID),
		slog.String("audit_date", auditDate.Format(domain.DateLayout)),
		slog.Int("closed", result.Closed),
		slog.Int("skipped", result.Skipped),
		slog.Int("errors", result.Errors))
	return result, nil
}

// closureReason evaluates the closure rules in priority order; the first
// matching rule's reason is returned.
func (s *autoCloseService) closureReason(folio *domain.Folio, reservation *domain.Reservation, auditDate time.Time) (string, bool) {
	zeroBalance := folio.Balance.IsZero()

	switch {
	case zeroBalance && reservation.Status == domain.ResCheckedOut:
		return "Zero balance - Checked out", true
	case zeroBalance && reservation.CheckOut.Before(auditDate):
		return "Zero balance - Past checkout", true
	case zeroBalance && reservation.Status == domain.ResNoShow:
		return "Zero balance - No show", true
	case folio.Balance.IsNegative() && s.inactiveDays(folio, auditDate) > creditBalanceInactivityDays:
		return "Credit balance - Inactive 30+ days", true
	}
	return "", false
}

// inactiveDays returns whole days between the folio's last transaction and
// the audit date; a folio without transactions counts from its creation.
func (s *autoCloseService) inactiveDays(folio *domain.Folio, auditDate time.Time) int {
	last := folio.LastTransactionDate()
	if last.IsZero() {
		last = folio.CreatedAt
	}
	return int(auditDate.Sub(last).Hours() / 24)
}
