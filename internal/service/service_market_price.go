package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-dashboard/internal/adapter"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

type marketPriceService struct {
	feed    adapter.MarketPriceFeed
	reports store.ReportRepository
	prices  store.PriceRepository

	logger *logger.Logger
}

func NewMarketPriceService(feed adapter.MarketPriceFeed, reports store.ReportRepository, prices store.PriceRepository, logger *logger.Logger) MarketPriceService {
	return &marketPriceService{
		feed:    feed,
		reports: reports,
		prices:  prices,
		logger:  logger,
	}
}

// quoteKey identifies one stored market price.
type quoteKey struct {
	fuelType    models.FuelType
	effectiveAt int64
}

// CollectMarketPrices fetches the feed and stores its quotes as market
// prices. Quotes of fuel types the station does not sell and negative
// prices are skipped. Of several quotes for the same fuel type and moment
// only the last one is stored.
func (m *marketPriceService) CollectMarketPrices(ctx context.Context) (int64, error) {
	quotes, err := m.feed.FetchPrices(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMarketFeedUnavailable, err)
	}

	known := make(map[models.FuelType]bool)
	toSave := make([]models.FuelPrice, 0, len(quotes))
	positions := make(map[quoteKey]int, len(quotes))
	for _, q := range quotes {
		if q.Price.IsNegative() {
			m.logger.Warn().Str("fuel_type", string(q.FuelType)).Str("price", q.Price.String()).Msg("negative market price skipped")
			continue
		}

		exists, checked := known[q.FuelType]
		if !checked {
			exists, err = m.reports.FuelTypeExists(ctx, q.FuelType)
			if err != nil {
				return 0, fmt.Errorf("error checking fuel type: %w", err)
			}
			known[q.FuelType] = exists
		}
		if !exists {
			m.logger.Debug().Str("fuel_type", string(q.FuelType)).Msg("market price of unknown fuel type skipped")
			continue
		}

		q.Source = models.PriceSourceMarket

		key := quoteKey{fuelType: q.FuelType, effectiveAt: q.EffectiveAt.UnixNano()}
		if i, seen := positions[key]; seen {
			m.logger.Debug().Str("fuel_type", string(q.FuelType)).Time("effective_at", q.EffectiveAt).Msg("duplicate market quote replaced")
			toSave[i] = q
			continue
		}
		positions[key] = len(toSave)
		toSave = append(toSave, q)
	}

	if len(toSave) == 0 {
		m.logger.Info().Int("fetched", len(quotes)).Msg("no market prices to store")
		return 0, nil
	}

	saved, err := m.prices.SaveFuelPrices(ctx, toSave)
	if err != nil {
		return 0, fmt.Errorf("error saving market prices: %w", err)
	}

	m.logger.Info().Int("fetched", len(quotes)).Int64("saved", saved).Msg("market prices collected")
	return saved, nil
}
