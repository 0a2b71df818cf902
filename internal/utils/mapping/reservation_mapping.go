package mapping

import (
	"strings"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/models"
)

// ToDomainReservation normalizes an inventory reservation row into the
// canonical domain shape. Status casing and optional columns are smoothed over
// here so the core never has to.
func ToDomainReservation(m models.Reservation) domain.Reservation {
	d := domain.Reservation{
		ReservationID: m.ReservationID,
		PropertyID:    m.PropertyID,
		GuestName:     m.GuestName,
		CheckIn:       m.CheckIn,
		CheckOut:      m.CheckOut,
		Status:        domain.ReservationStatus(strings.ToUpper(strings.TrimSpace(m.Status))),
		Adults:        m.Adults,
		Children:      m.Children,
	}
	if m.RoomNumber != nil {
		d.RoomNumber = *m.RoomNumber
	}
	if m.RoomRate != nil {
		d.RoomRate = *m.RoomRate
	}
	return d
}

// ToDomainReservationSlice converts a slice of model Reservations.
func ToDomainReservationSlice(ms []models.Reservation) []domain.Reservation {
	ds := make([]domain.Reservation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReservation(m)
	}
	return ds
}
