package domain

import "time"

// ReservationStatus follows the front-office lifecycle of a stay.
type ReservationStatus string

const (
	ResConfirmed  ReservationStatus = "CONFIRMED"
	ResCheckedIn  ReservationStatus = "CHECKED_IN"
	ResCheckedOut ReservationStatus = "CHECKED_OUT"
	ResNoShow     ReservationStatus = "NO_SHOW"
	ResCancelled  ReservationStatus = "CANCELLED"
)

// Reservation is the canonical stay record as seen by the folio engine. The
// inventory manager owns reservations; its raw shapes are normalized into
// this type at the repository boundary so the core never inspects external
// field variants.
type Reservation struct {
	ReservationID string            `json:"reservationID"`
	PropertyID    string            `json:"propertyID"`
	RoomNumber    string            `json:"roomNumber"`
	GuestName     string            `json:"guestName"`
	CheckIn       time.Time         `json:"checkIn"`
	CheckOut      time.Time         `json:"checkOut"`
	Status        ReservationStatus `json:"status"`
	Adults        int               `json:"adults"`
	Children      int               `json:"children"`
	RoomRate      string            `json:"roomRate,omitempty"` // Nightly rate as stored by inventory; parsed by the room poster
}

// InHouseOn reports whether the stay occupies a room on the given business
// date: the guest is checked in and date falls in [checkIn, checkOut).
func (r *Reservation) InHouseOn(date time.Time) bool {
	if r.Status != ResCheckedIn {
		return false
	}
	return !date.Before(truncateToDay(r.CheckIn)) && date.Before(truncateToDay(r.CheckOut))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
