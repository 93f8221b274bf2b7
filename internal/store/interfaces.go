package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	CountUsers(ctx context.Context) (int64, error)
}

// ReportRepository serves the aggregates the dashboard reports are computed
// from. Every period argument is the half-open range [From, To).
type ReportRepository interface {
	FuelSalesTotals(ctx context.Context, period models.Period) ([]models.FuelSalesTotal, error)
	FuelPurchaseTotals(ctx context.Context, period models.Period) ([]models.FuelPurchaseTotal, error)
	// LatestUnitCosts returns the unit cost of the most recent purchase of
	// each fuel type made before the given instant.
	LatestUnitCosts(ctx context.Context, before time.Time) (map[models.FuelType]decimal.Decimal, error)
	ExpenseTotals(ctx context.Context, period models.Period) ([]models.ExpenseTotal, error)
	// AccountBalances returns every ledger account with the sum of its
	// entries posted before the given instant.
	AccountBalances(ctx context.Context, before time.Time) ([]models.AccountBalance, error)
	CashFlowTotals(ctx context.Context, period models.Period) ([]models.CashFlowTotal, error)
	CashBalanceBefore(ctx context.Context, before time.Time) (decimal.Decimal, error)
	// FuelPrices returns the price records effective inside the period,
	// ordered by fuel type, source and effective time.
	FuelPrices(ctx context.Context, period models.Period, fuelType models.FuelType) ([]models.FuelPrice, error)
	// LatestFuelPrices returns, per fuel type and source, the last price
	// effective at or before the given instant.
	LatestFuelPrices(ctx context.Context, atOrBefore time.Time, fuelType models.FuelType) ([]models.FuelPrice, error)
	FuelTypeExists(ctx context.Context, fuelType models.FuelType) (bool, error)
}

type PriceRepository interface {
	SaveFuelPrices(ctx context.Context, prices []models.FuelPrice) (int64, error)
}

// ReportCache stores serialized reports under a caller-built key.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
