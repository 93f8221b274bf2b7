package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

// DashboardCacheService serves reports from the report cache and fills it
// on a miss. Cache failures are logged and never fail the request.
type DashboardCacheService struct {
	inner  DashboardService
	cache  store.ReportCache
	logger *logger.Logger
}

func NewDashboardCacheService(cache store.ReportCache, logger *logger.Logger) DashboardServiceWrapper {
	logger.Debug().Msg("creating dashboard report cache")
	return &DashboardCacheService{
		cache:  cache,
		logger: logger,
	}
}

func (c *DashboardCacheService) Wrap(inner DashboardService) DashboardService {
	c.inner = inner
	return c
}

func (c *DashboardCacheService) GetFinancialSummary(ctx context.Context, period models.Period) (models.FinancialSummary, error) {
	return cached(ctx, c, periodKey("financial-summary", period), func() (models.FinancialSummary, error) {
		return c.inner.GetFinancialSummary(ctx, period)
	})
}

func (c *DashboardCacheService) GetProfitLossStatement(ctx context.Context, period models.Period) (models.ProfitLossStatement, error) {
	return cached(ctx, c, periodKey("profit-loss", period), func() (models.ProfitLossStatement, error) {
		return c.inner.GetProfitLossStatement(ctx, period)
	})
}

func (c *DashboardCacheService) GetBalanceSheet(ctx context.Context, asOf time.Time) (models.BalanceSheet, error) {
	key := fmt.Sprintf("balance-sheet:%s", asOf.UTC().Format(models.DateLayout))
	return cached(ctx, c, key, func() (models.BalanceSheet, error) {
		return c.inner.GetBalanceSheet(ctx, asOf)
	})
}

func (c *DashboardCacheService) GetCashFlowStatement(ctx context.Context, period models.Period) (models.CashFlowStatement, error) {
	return cached(ctx, c, periodKey("cash-flow", period), func() (models.CashFlowStatement, error) {
		return c.inner.GetCashFlowStatement(ctx, period)
	})
}

func (c *DashboardCacheService) GetFuelPriceAnalysis(ctx context.Context, period models.Period, fuelType models.FuelType) (models.FuelPriceAnalysis, error) {
	key := periodKey("fuel-price-analysis", period) + ":" + string(fuelType)
	return cached(ctx, c, key, func() (models.FuelPriceAnalysis, error) {
		return c.inner.GetFuelPriceAnalysis(ctx, period, fuelType)
	})
}

func periodKey(report string, period models.Period) string {
	return fmt.Sprintf("%s:%d:%d", report, period.From.Unix(), period.To.Unix())
}

// cached returns the report stored under key or computes it with load and
// stores the result. Errors from load are returned and never cached.
func cached[T any](ctx context.Context, c *DashboardCacheService, key string, load func() (T, error)) (T, error) {
	log := logger.FromContext(ctx)

	data, err := c.cache.Get(ctx, key)
	switch {
	case err == nil:
		var report T
		if err = json.Unmarshal(data, &report); err == nil {
			log.Debug().Str("key", key).Msg("report served from cache")
			return report, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("corrupted cache entry ignored")
	case !errors.Is(err, store.ErrCacheMiss):
		log.Warn().Err(err).Str("key", key).Msg("report cache unavailable")
	}

	report, err := load()
	if err != nil {
		return report, err
	}

	data, err = json.Marshal(report)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error encoding report for cache")
		return report, nil
	}
	if err = c.cache.Set(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("error storing report in cache")
	}

	return report, nil
}
