package repositories

import (
	"context"
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// PropertyRepository persists the tenant record, including the per-property
// night-audit marker.
type PropertyRepository interface {
	// FindByID retrieves the property record.
	FindByID(ctx context.Context, propertyID string) (*domain.Property, error)

	// UpdateLastAuditDate advances the property's last audit date. It is only
	// called after a fully successful audit run.
	UpdateLastAuditDate(ctx context.Context, propertyID string, auditDate time.Time, updatedBy string, updatedAt time.Time) error
}
