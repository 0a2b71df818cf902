package pgsql

import (
	portsrepo "github.com/amphorabeer/pms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	folioRepo := newPgxFolioRepository(dbPool)
	packageRepo := newPgxReservationPackageRepository(dbPool)
	reservationRepo := newPgxReservationRepository(dbPool)
	taxRateRepo := newPgxTaxRateRepository(dbPool)
	propertyRepo := newPgxPropertyRepository(dbPool)

	return portsrepo.RepositoryProvider{
		FolioRepo:       folioRepo,
		PackageRepo:     packageRepo,
		ReservationRepo: reservationRepo,
		TaxRateRepo:     taxRateRepo,
		PropertyRepo:    propertyRepo,
	}
}
