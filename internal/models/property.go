package models

import "time"

// Property is the persisted tenant record.
type Property struct {
	PropertyID    string     `json:"propertyID"` // Primary Key (UUID)
	Name          string     `json:"name"`
	TotalRooms    int        `json:"totalRooms"`
	LastAuditDate *time.Time `json:"lastAuditDate,omitempty"`
	AuditFields
}
