package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/models"
)

// ToModelReservationPackage converts a domain ReservationPackage to its
// persisted shape, encoding consumptions as JSON.
func ToModelReservationPackage(d domain.ReservationPackage) (models.ReservationPackage, error) {
	m := models.ReservationPackage{
		ReservationID: d.ReservationID,
		PropertyID:    d.PropertyID,
		PackageID:     d.PackageID,
		Adults:        d.Adults,
		Children:      d.Children,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		PostedDates:   d.PostedDates,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if len(d.Consumptions) > 0 {
		payload, err := json.Marshal(d.Consumptions)
		if err != nil {
			return models.ReservationPackage{}, fmt.Errorf("failed to encode consumptions for reservation %s: %w", d.ReservationID, err)
		}
		m.Consumptions = payload
	}
	return m, nil
}

// ToDomainReservationPackage converts a model ReservationPackage to a domain
// ReservationPackage.
func ToDomainReservationPackage(m models.ReservationPackage) (domain.ReservationPackage, error) {
	d := domain.ReservationPackage{
		ReservationID: m.ReservationID,
		PropertyID:    m.PropertyID,
		PackageID:     m.PackageID,
		Adults:        m.Adults,
		Children:      m.Children,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		PostedDates:   m.PostedDates,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Consumptions) > 0 {
		if err := json.Unmarshal(m.Consumptions, &d.Consumptions); err != nil {
			return domain.ReservationPackage{}, fmt.Errorf("failed to decode consumptions for reservation %s: %w", m.ReservationID, err)
		}
	}
	return d, nil
}
