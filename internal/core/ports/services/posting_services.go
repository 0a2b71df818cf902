package services

import (
	"context"
	"time"

	"github.com/amphorabeer/pms_backend/internal/core/domain"
)

// PackagePostingSvc posts the night's package component charges for every
// in-house reservation with an assigned package. Re-running for the same
// audit date is safe: already-posted reservations are counted as skipped.
type PackagePostingSvc interface {
	PostPackageCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error)
}

// RoomChargePoster posts the nightly room rate for every in-house
// reservation. It honours the same idempotency and containment contract as
// package posting and exposes the same result shape.
type RoomChargePoster interface {
	PostRoomCharges(ctx context.Context, propertyID string, auditDate time.Time) (*domain.PostingResult, error)
}

// AutoCloseSvc scans open folios and closes those matching the closure rules.
type AutoCloseSvc interface {
	AutoCloseFolios(ctx context.Context, propertyID string, auditDate time.Time) (*domain.AutoCloseResult, error)
}

// NightAuditSvc orchestrates the end-of-day batch for one business date.
type NightAuditSvc interface {
	// RunNightAudit executes room posting, package posting, auto-close and
	// the tax summary, then advances the property's last audit date. Partial
	// per-item failures inside the steps do not prevent the marker from
	// advancing; only a whole-step failure does.
	RunNightAudit(ctx context.Context, propertyID string, auditDate time.Time, runBy string) (*domain.NightAuditReport, error)

	// LastAuditDate returns the property's audit marker, nil when no audit
	// has ever completed.
	LastAuditDate(ctx context.Context, propertyID string) (*time.Time, error)
}
