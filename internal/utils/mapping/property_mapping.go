package mapping

import (
	"github.com/amphorabeer/pms_backend/internal/core/domain"
	"github.com/amphorabeer/pms_backend/internal/models"
)

// ToModelProperty converts a domain Property to a model Property
func ToModelProperty(d domain.Property) models.Property {
	return models.Property{
		PropertyID:    d.PropertyID,
		Name:          d.Name,
		TotalRooms:    d.TotalRooms,
		LastAuditDate: d.LastAuditDate,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProperty converts a model Property to a domain Property
func ToDomainProperty(m models.Property) domain.Property {
	return domain.Property{
		PropertyID:    m.PropertyID,
		Name:          m.Name,
		TotalRooms:    m.TotalRooms,
		LastAuditDate: m.LastAuditDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
