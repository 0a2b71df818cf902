package repositories

// RepositoryProvider bundles every persistence port the engine needs.
type RepositoryProvider struct {
	FolioRepo       FolioRepositoryFacade
	PackageRepo     ReservationPackageRepository
	ReservationRepo ReservationRepository
	TaxRateRepo     TaxRateRepository
	PropertyRepo    PropertyRepository
}
