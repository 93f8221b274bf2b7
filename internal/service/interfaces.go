package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=DashboardServiceWrapper

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// EnsureAdmin creates the configured bootstrap administrator when the
	// users table is empty.
	EnsureAdmin(ctx context.Context) error
}

// DashboardService computes the financial reports served under /api/dashboard.
type DashboardService interface {
	GetFinancialSummary(ctx context.Context, period models.Period) (models.FinancialSummary, error)
	GetProfitLossStatement(ctx context.Context, period models.Period) (models.ProfitLossStatement, error)
	GetBalanceSheet(ctx context.Context, asOf time.Time) (models.BalanceSheet, error)
	GetCashFlowStatement(ctx context.Context, period models.Period) (models.CashFlowStatement, error)
	// GetFuelPriceAnalysis analyses every fuel type, or only fuelType when it
	// is not empty.
	GetFuelPriceAnalysis(ctx context.Context, period models.Period, fuelType models.FuelType) (models.FuelPriceAnalysis, error)
}

// DashboardServiceWrapper decorates a DashboardService with additional
// behavior such as validation or caching.
type DashboardServiceWrapper interface {
	Wrap(DashboardService) DashboardService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// MarketPriceService pulls reference fuel prices from the market feed.
type MarketPriceService interface {
	// CollectMarketPrices stores the current feed prices and returns how
	// many records were saved.
	CollectMarketPrices(ctx context.Context) (int64, error)
}
