package models

import "time"

// ReservationPackage is the persisted shape of a package assignment.
// PostedDates maps to a text[] column; Consumptions to a JSONB document.
type ReservationPackage struct {
	ReservationID string    `json:"reservationID"`
	PropertyID    string    `json:"propertyID"`
	PackageID     string    `json:"packageID"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PostedDates   []string  `json:"postedDates"`
	Consumptions  []byte    `json:"consumptions,omitempty"` // JSONB payload
	AuditFields
}
