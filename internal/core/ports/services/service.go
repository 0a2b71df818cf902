package services

// ServiceContainer holds instances of all the application services. It is the
// main entry point for accessing service functionality from the handlers.
type ServiceContainer struct {
	Folio          FolioSvcFacade
	Catalog        PackageCatalog
	PackagePosting PackagePostingSvc
	RoomPosting    RoomChargePoster
	AutoClose      AutoCloseSvc
	NightAudit     NightAuditSvc
	Reporting      ReportingService
}
