package services

import "github.com/amphorabeer/pms_backend/internal/core/domain"

// PackageCatalog is the static registry of package definitions. Lookups never
// touch storage, so no context is threaded through.
type PackageCatalog interface {
	// FindByID resolves a package definition, or apperrors.ErrNotFound.
	FindByID(packageID string) (*domain.PackageDefinition, error)

	// FindByCode resolves a package definition by its short code (BB, HB, ...).
	FindByCode(code string) (*domain.PackageDefinition, error)

	// List returns all active package definitions.
	List() []domain.PackageDefinition
}
