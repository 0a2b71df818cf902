package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
)

// ErrMissingRoomRate indicates an in-house reservation carries no usable
// nightly rate. It is a per-reservation failure.
var ErrMissingRoomRate = errors.New("reservation has no nightly room rate")

const roomPostingSource = "ROOM"

// roomPostingService posts the nightly room rate for in-house reservations.
type roomPostingService struct {
	BaseService
	reservationRepo portsrepo.ReservationRepository
	folioRepo       portsrepo.FolioReader
	folioSvc        portssvc.FolioSvcFacade
}

// NewRoomPostingService creates a new RoomChargePoster.
func NewRoomPostingService(
	reservationRepo portsrepo.ReservationRepository,
	folioRepo portsrepo.FolioReader,
	folioSvc portssvc.FolioSvcFacade,
) portssvc.RoomChargePoster {
	return &roomPostingService{
		reservationRepo: reservationRepo,
		folioRepo:       folioRepo,
		folioSvc:        folioSvc,
	}
}

// Ensure roomPostingService implements the RoomChargePoster interface
var _ portssvc.RoomChargePoster = (*roomPostingService)(nil)

// PostRoomCharges posts one room charge per in-house reservation for the
// audit date. The posting reference makes re-runs exactly-once: a reservation
// whose reference already exists is counted as skipped.
func (s *roomPostingService) PostRoomCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error) {
	reservations, err := s.reservationRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		s.LogError(ctx, err, "Reservation source unreachable for room posting",
			slog.String("property_id", propertyID))
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	auditDateStr := auditDate.Format(domain.DateLayout)
	result := &domain.PostingResult{TotalAmount: decimal.Zero}
	for _, res := range reservations {
		if !res.InHouseOn(auditDate) {
			continue
		}

		detail := domain.PostingDetail{
			ReservationID: res.ReservationID,
			RoomNumber:    res.RoomNumber,
			GuestName:     res.GuestName,
			Amount:        decimal.Zero,
		}

		ref := domain.PostingReference(roomPostingSource, res.ReservationID, auditDate, "")
		exists, err := s.folioRepo.ReferenceExists(ctx, ref)
		if err != nil {
			detail.Status = "failed"
			detail.Error = fmt.Sprintf("failed to check posting reference: %v", err)
			result.Failed++
			result.Details = append(result.Details, detail)
			continue
		}
		if exists {
			detail.Status = "skipped"
			result.Skipped++
			result.Details = append(result.Details, detail)
			continue
		}

		rate, err := decimal.NewFromString(res.RoomRate)
		if err != nil || !rate.IsPositive() {
			s.LogError(ctx, ErrMissingRoomRate, "Skipping room charge",
				slog.String("reservation_id", res.ReservationID),
				slog.String("raw_rate", res.RoomRate))
			detail.Status = "failed"
			detail.Error = ErrMissingRoomRate.Error()
			result.Failed++
			result.Details = append(result.Details, detail)
			continue
		}

		folio, err := s.folioSvc.EnsureFolio(ctx, res, AuditActor)
		if err == nil {
			entry := domain.FolioTransaction{
				Date:           auditDate,
				Type:           domain.TxnCharge,
				Category:       string(domain.CategoryRoom),
				Description:    fmt.Sprintf("Room Charge - Room %s", res.RoomNumber),
				Debit:          rate,
				Credit:         decimal.Zero,
				ReferenceID:    &ref,
				NightAuditDate: &auditDateStr,
			}
			err = s.folioSvc.PostEntries(ctx, folio, []domain.FolioTransaction{entry}, AuditActor)
		}
		if err != nil {
			s.LogError(ctx, err, "Room posting failed for reservation",
				slog.String("reservation_id", res.ReservationID))
			detail.Status = "failed"
			detail.Error = err.Error()
			result.Failed++
			result.Details = append(result.Details, detail)
			continue
		}

		detail.Status = "posted"
		detail.Amount = rate
		result.Posted++
		result.TotalAmount = result.TotalAmount.Add(rate)
		result.Details = append(result.Details, detail)
	}

	s.LogInfo(ctx, "Room posting completed",
		slog.String("property_id", propertyID),
		slog.String("audit_date", auditDateStr),
		slog.Int("posted", result.Posted),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.String("total_amount", result.TotalAmount.String()))
	return result, nil
}
