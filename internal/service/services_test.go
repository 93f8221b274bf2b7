package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/config"
	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/mock"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testStorages(ctrl *gomock.Controller, withCache bool) *store.Storages {
	s := &store.Storages{
		UserRepository:   mock.NewMockUserRepository(ctrl),
		ReportRepository: mock.NewMockReportRepository(ctrl),
		PriceRepository:  mock.NewMockPriceRepository(ctrl),
	}
	if withCache {
		s.ReportCache = mock.NewMockReportCache(ctrl)
	}
	return s
}

func testStructuredConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{TokenSignKey: "k", TokenIssuer: "i", TokenDuration: time.Hour, Version: "1.0.0"},
	}
}

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	build := models.NewAppBuildInfo("", "", "")

	t.Run("with cache and feed", func(t *testing.T) {
		services, err := NewServices(testStorages(ctrl, true), mock.NewMockMarketPriceFeed(ctrl), testStructuredConfig(), build, logger.Nop())
		require.NoError(t, err)

		validation, ok := services.DashboardService.(*DashboardValidationService)
		require.True(t, ok, "validation runs first")
		_, ok = validation.inner.(*DashboardCacheService)
		assert.True(t, ok, "cache sits behind validation")

		assert.NotNil(t, services.AuthService)
		assert.NotNil(t, services.MarketPriceService)
		assert.Equal(t, "1.0.0", services.AppInfoService.GetAppInfo(t.Context()).Version)
	})

	t.Run("without cache and feed", func(t *testing.T) {
		services, err := NewServices(testStorages(ctrl, false), nil, testStructuredConfig(), build, logger.Nop())
		require.NoError(t, err)

		validation, ok := services.DashboardService.(*DashboardValidationService)
		require.True(t, ok)
		_, ok = validation.inner.(*dashboardService)
		assert.True(t, ok)

		assert.Nil(t, services.MarketPriceService)
	})

	t.Run("no version", func(t *testing.T) {
		cfg := testStructuredConfig()
		cfg.App.Version = ""

		services, err := NewServices(testStorages(ctrl, false), nil, cfg, build, logger.Nop())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
		assert.Nil(t, services)
	})
}
