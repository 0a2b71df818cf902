package domain

import "time"

// Property is the tenant record. LastAuditDate is the per-property night
// audit marker; the orchestrator advances it only after a fully successful
// run, and it must never move backwards.
type Property struct {
	PropertyID    string     `json:"propertyID"`
	Name          string     `json:"name"`
	TotalRooms    int        `json:"totalRooms"`
	LastAuditDate *time.Time `json:"lastAuditDate,omitempty"`
	AuditFields
}
