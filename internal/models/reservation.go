package models

import "time"

// Reservation is the raw shape of a stay row as the inventory store keeps it.
// The repository normalizes it into the canonical domain type.
type Reservation struct {
	ReservationID string    `json:"reservationID"` // Primary Key (UUID)
	PropertyID    string    `json:"propertyID"`
	RoomNumber    *string   `json:"roomNumber,omitempty"`
	GuestName     string    `json:"guestName"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`
	Status        string    `json:"status"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	RoomRate      *string   `json:"roomRate,omitempty"` // Numeric column kept as text for lossless transport
}
