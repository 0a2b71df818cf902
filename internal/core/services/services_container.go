package services

import (
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The package
// catalog defaults to the standard board-basis definitions when nil.
func NewServiceContainer(repos portsrepo.RepositoryProvider, catalog portssvc.PackageCatalog) *portssvc.ServiceContainer {
	if catalog == nil {
		catalog = NewPackageCatalog(DefaultPackageDefinitions())
	}

	folioSvc := NewFolioService(repos.FolioRepo)
	reporting := NewReportingService(repos.FolioRepo, repos.ReservationRepo, repos.TaxRateRepo, repos.PropertyRepo)
	roomPosting := NewRoomPostingService(repos.ReservationRepo, repos.FolioRepo, folioSvc)
	packagePosting := NewPackagePostingService(repos.ReservationRepo, repos.PackageRepo, repos.FolioRepo, catalog, folioSvc)
	autoClose := NewAutoCloseService(repos.FolioRepo, repos.ReservationRepo, folioSvc)
	nightAudit := NewNightAuditService(repos.PropertyRepo, roomPosting, packagePosting, autoClose, reporting)

	return &portssvc.ServiceContainer{
		Folio:          folioSvc,
		Catalog:        catalog,
		PackagePosting: packagePosting,
		RoomPosting:    roomPosting,
		AutoClose:      autoClose,
		NightAudit:     nightAudit,
		Reporting:      reporting,
	}
}
