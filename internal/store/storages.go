package store

import (
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
)

// Storages groups the repositories the service layer is built on.
// ReportCache is nil when no redis address is configured.
type Storages struct {
	UserRepository   UserRepository
	ReportRepository ReportRepository
	PriceRepository  PriceRepository
	ReportCache      ReportCache
}

func NewStorages(db *DB, cache ReportCache, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		ReportRepository: NewReportRepository(db, logger),
		PriceRepository:  NewPriceRepository(db, logger),
		ReportCache:      cache,
	}
}
