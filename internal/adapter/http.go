package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/shopspring/decimal"
)

const pricesPath = "/prices"

// feedPrice is the wire representation of a single quote.
type feedPrice struct {
	FuelType    string           `json:"fuel_type"`
	Price       *decimal.Decimal `json:"price"`
	EffectiveAt *time.Time       `json:"effective_at"`
}

type httpMarketPriceFeed struct {
	client *utils.HTTPClient
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPMarketPriceFeed constructs an HTTP/REST implementation of
// [MarketPriceFeed]. It normalises and validates the base URL from
// cfg.MarketPriceURL and configures the underlying client with the request
// timeout.
//
// Returns an error if cfg.MarketPriceURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPMarketPriceFeed(cfg config.Adapter, logger *logger.Logger) (MarketPriceFeed, error) {
	baseURL, err := normalizeBaseURL(cfg.MarketPriceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid market price feed address: %w", err)
	}

	return &httpMarketPriceFeed{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		now:    time.Now,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchPrices implements [MarketPriceFeed]. Quotes without effective_at are
// stamped with the fetch time. A quote with an empty fuel type or a missing
// price makes the whole response invalid.
func (h *httpMarketPriceFeed) FetchPrices(ctx context.Context) ([]models.FuelPrice, error) {
	var body []feedPrice

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get(pricesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	fetchedAt := h.now().UTC()
	prices := make([]models.FuelPrice, 0, len(body))
	for i, quote := range body {
		fuelType := strings.ToUpper(strings.TrimSpace(quote.FuelType))
		if fuelType == "" || quote.Price == nil {
			return nil, fmt.Errorf("%w: quote %d is incomplete", ErrInvalidFeedResponse, i)
		}

		effectiveAt := fetchedAt
		if quote.EffectiveAt != nil && !quote.EffectiveAt.IsZero() {
			effectiveAt = quote.EffectiveAt.UTC()
		}

		prices = append(prices, models.FuelPrice{
			FuelType:    models.FuelType(fuelType),
			Price:       *quote.Price,
			Source:      models.PriceSourceMarket,
			EffectiveAt: effectiveAt,
		})
	}

	h.logger.Debug().Int("count", len(prices)).Msg("market prices fetched")

	return prices, nil
}
