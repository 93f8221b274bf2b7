// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients of external systems the dashboard
// depends on.
//
// The only abstraction today is [MarketPriceFeed], which hides the market
// fuel price provider behind a protocol-agnostic interface. The package ships
// an HTTP/REST implementation ([NewHTTPMarketPriceFeed]).
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-fuel-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// MarketPriceFeed fetches current market fuel prices from an external provider.
type MarketPriceFeed interface {
	// FetchPrices returns the prices currently published by the provider.
	// Every returned price has Source set to [models.PriceSourceMarket].
	FetchPrices(ctx context.Context) ([]models.FuelPrice, error)
}
