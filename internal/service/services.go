package service

import (
	"fmt"

	"github.com/MKhiriev/go-fuel-dashboard/internal/adapter"
	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

type Services struct {
	AuthService      AuthService
	DashboardService DashboardService
	AppInfoService   AppInfoService
	// MarketPriceService is nil when no market price feed is configured.
	MarketPriceService MarketPriceService
}

// NewServices assembles the service layer. The dashboard service is wrapped
// with the report cache when storages carry one, and validation always runs
// first.
func NewServices(storages *store.Storages, feed adapter.MarketPriceFeed, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	dashboard := NewDashboardService(storages.ReportRepository, logger)
	if storages.ReportCache != nil {
		dashboard = NewDashboardCacheService(storages.ReportCache, logger).Wrap(dashboard)
	}
	dashboard = NewDashboardValidationService().Wrap(dashboard)

	services := &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		DashboardService: dashboard,
		AppInfoService:   appInfo,
	}

	if feed != nil {
		services.MarketPriceService = NewMarketPriceService(feed, storages.ReportRepository, storages.PriceRepository, logger)
	}

	return services, nil
}
