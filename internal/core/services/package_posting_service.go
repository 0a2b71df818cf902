package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/amphorabeer/pms_backend/internal/utils/taxmath"
)

// ErrPackageDefinitionMissing indicates a reservation references a package id
// that is not in the catalog. It is a per-reservation failure and never
// aborts the batch.
var ErrPackageDefinitionMissing = errors.New("package definition missing from catalog")

const packagePostingSource = "PKG"

var childFactor = decimal.RequireFromString("0.5")

// packagePostingService posts the night's package component charges.
type packagePostingService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepository
	packageRepo     portsrepo.ReservationPackageRepository
	folioRepo       portsrepo.FolioReader
	catalog         portssvc.PackageCatalog
	folioSvc        portssvc.FolioSvcFacade
}

// NewPackagePostingService creates a new PackagePostingSvc.
func NewPackagePostingService(
	reservationRepo portsrepo.ReservationRepository,
	packageRepo portsrepo.ReservationPackageRepository,
	folioRepo portsrepo.FolioReader,
	catalog portssvc.PackageCatalog,
	folioSvc portssvc.FolioSvcFacade,
) portssvc.PackagePostingSvc {
	return &packagePostingService{
		reservationRepo: reservationRepo,
		packageRepo:     packageRepo,
		folioRepo:       folioRepo,
		catalog:         catalog,
		folioSvc:        folioSvc,
	}
}

// Ensure packagePostingService implements the PackagePostingSvc interface
var _ portssvc.PackagePostingSvc = (*packagePostingService)(nil)

// PostPackageCharges posts every in-house reservation's night-audit package
// components for the audit date. Re-running the same date is safe: already
// posted reservations are counted as skipped and no referenceId is reused.
// Per-reservation failures are contained; only an unreachable reservation
// source fails the whole step.
func (s *packagePostingService) PostPackageCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error) {
	reservations, err := s.reservationRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Reservation source unreachable for package posting",
			slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	result := &domain.PostingResult{TotalAmount: decimal.Zero}
	for _, res := range reservations {
		if !res.InHouseOn(auditDate) {
			continue
		}

		assignment, err := s.packageRepo.FindByReservationID(ctx, propertyID, res.ReservationID)
		if errors.Is(err, apperrors.ErrNotFound) {
			// Stay has no package; nothing to post.
			continue
		}
		if err != nil {
			s.recordFailure(ctx, result, res, fmt.Errorf("failed to load package assignment: %w", err))
			continue
		}

		if assignment.HasPostedDate(auditDate) {
			result.Skipped++
			result.Details = append(result.Details, domain.PostingDetail{
				ReservationID: res.ReservationID,
				RoomNumber:    res.RoomNumber,
				GuestName:     res.GuestName,
				Status:        "skipped",
				Amount:        decimal.Zero,
			})
			continue
		}

		amount, err := s.postReservation(ctx, res, assignment, auditDate)
		if err != nil {
			s.recordFailure(ctx, result, res, err)
			continue
		}

		result.Posted++
		result.TotalAmount = result.TotalAmount.Add(amount)
		result.Details = append(result.Details, domain.PostingDetail{
			ReservationID: res.ReservationID,
			RoomNumber:    res.RoomNumber,
			GuestName:     res.GuestName,
			Status:        "posted",
			Amount:        amount,
		})
	}

	s.LogInfo(ctx, "Package posting completed",
		slog.String("property_id", propertyID),
		slog.String("audit_date", auditDate.Format(domain.DateLayout)),
		slog.Int("posted", result.Posted),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.String("total_amount", result.TotalAmount.String()))
	return result, nil
}

// postReservation posts one reservation's night-audit components and marks
// the date in the assignment's posted ledger. Returns the gross amount posted.
func (s *packagePostingService) postReservation(ctx context.Context, res domain.Reservation, assignment *domain.ReservationPackage, auditDate time.Time) (decimal.Decimal, error) {
	def, err := s.catalog.FindByID(assignment.PackageID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrPackageDefinitionMissing, assignment.PackageID)
	}

	entries, total := s.buildComponentEntries(def, assignment, auditDate)
	if len(entries) == 0 {
		// Nothing posts at night audit for this package (e.g. room only);
		// the date is still marked so re-runs skip the reservation.
		assignment.MarkPosted(auditDate)
		if err := s.packageRepo.UpdatePostedDates(ctx, *assignment); err != nil {
			return decimal.Zero, fmt.Errorf("failed to persist posted dates: %w", err)
		}
		return decimal.Zero, nil
	}

	// A previous partially-failed run may have written the transactions
	// without updating the posted ledger; the referenceId guard keeps the
	// operation exactly-once either way.
	exists, err := s.folioRepo.ReferenceExists(ctx, *entries[0].ReferenceID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to check posting reference: %w", err)
	}
	if !exists {
		folio, err := s.folioSvc.EnsureFolio(ctx, res, AuditActor)
		if err != nil {
			return decimal.Zero, err
		}
		if err := s.folioSvc.PostEntries(ctx, folio, entries, AuditActor); err != nil {
			return decimal.Zero, err
		}
	} else {
		s.LogWarn(ctx, "Package charges already present, repairing posted-dates ledger",
			slog.String("reservation_id", res.ReservationID),
			slog.String("audit_date", auditDate.Format(domain.DateLayout)))
		total = decimal.Zero
	}

	assignment.MarkPosted(auditDate)
	if err := s.packageRepo.UpdatePostedDates(ctx, *assignment); err != nil {
		return decimal.Zero, fmt.Errorf("failed to persist posted dates: %w", err)
	}
	return total, nil
}

// buildComponentEntries prices the package's night-audit components for the
// assignment's occupancy. Children are charged half the adult retail value;
// tax is additive on top of the net component price.
func (s *packagePostingService) buildComponentEntries(def *domain.PackageDefinition, assignment *domain.ReservationPackage, auditDate time.Time) ([]domain.FolioTransaction, decimal.Decimal) {
	adults := decimal.NewFromInt(int64(assignment.Adults))
	children := decimal.NewFromInt(int64(assignment.Children))
	auditDateStr := auditDate.Format(domain.DateLayout)

	var entries []domain.FolioTransaction
	total := decimal.Zero
	for _, comp := range def.Components {
		rule, ok := def.RuleFor(comp.ComponentID)
		if !ok || rule.PostingTime != domain.PostAtNightAudit {
			continue
		}

		adultAmount := comp.RetailValue.Mul(adults)
		childAmount := comp.RetailValue.Mul(childFactor).Mul(children)
		net := adultAmount.Add(childAmount)
		tax := taxmath.AddOn(net, comp.TaxRate)
		gross := net.Add(tax)

		ref := domain.PostingReference(packagePostingSource, assignment.ReservationID, auditDate, comp.ComponentID)
		entries = append(entries, domain.FolioTransaction{
			Date:           auditDate,
			Type:           domain.TxnCharge,
			Category:       comp.Category,
			Description:    fmt.Sprintf("%s - %s", def.Name, comp.Name),
			Debit:          gross,
			Credit:         decimal.Zero,
			ReferenceID:    &ref,
			NightAuditDate: &auditDateStr,
			TaxDetails: []domain.TaxDetail{{
				TaxType: "VAT",
				Rate:    comp.TaxRate,
				Amount:  tax,
				Base:    net,
			}},
		})
		total = total.Add(gross)
	}
	return entries, total
}

func (s *packagePostingService) recordFailure(ctx context.Context, result *domain.PostingResult, res domain.Reservation, err error) {
	s.LogError(ctx, err, "Package posting failed for reservation",
		slog.String("reservation_id", res.ReservationID))
	result.Failed++
	result.Details = append(result.Details, domain.PostingDetail{
		ReservationID: res.ReservationID,
		RoomNumber:    res.RoomNumber,
		GuestName:     res.GuestName,
		Status:        "failed",
		Amount:        decimal.Zero,
		Error:         err.Error(),
	})
}
