// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/mock"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var march = models.NewPeriod(day(2026, time.March, 1), day(2026, time.March, 31))

func newTestDashboardService(t *testing.T) (DashboardService, *mock.MockReportRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reports := mock.NewMockReportRepository(ctrl)
	return NewDashboardService(reports, logger.Nop()), reports
}

// expectMarchProfitLoss stubs the aggregates of a month with two fuel types,
// one of which has no purchases inside the month.
func expectMarchProfitLoss(reports *mock.MockReportRepository, ctx context.Context) {
	reports.EXPECT().FuelSalesTotals(ctx, march).Return([]models.FuelSalesTotal{
		{FuelType: "AI-95", Liters: dec("1000"), Amount: dec("55000"), Count: 40},
		{FuelType: "DT", Liters: dec("500"), Amount: dec("30000"), Count: 10},
	}, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, march).Return([]models.FuelPurchaseTotal{
		{FuelType: "AI-95", Liters: dec("2000"), Amount: dec("90000")},
	}, nil)
	reports.EXPECT().ExpenseTotals(ctx, march).Return([]models.ExpenseTotal{
		{Category: "salaries", Amount: dec("8000")},
		{Category: "utilities", Amount: dec("1234.567")},
	}, nil)
	reports.EXPECT().LatestUnitCosts(ctx, march.To).Return(map[models.FuelType]decimal.Decimal{
		"DT": dec("50"),
	}, nil)
}

// ── Financial summary ────────────────────────────────────────────────────────

func TestDashboardService_GetFinancialSummary(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	expectMarchProfitLoss(reports, ctx)
	reports.EXPECT().CashBalanceBefore(ctx, march.To).Return(dec("12345.678"), nil)

	got, err := svc.GetFinancialSummary(ctx, march)
	require.NoError(t, err)

	assert.Equal(t, march, got.Period)
	assertDecimal(t, "85000", got.Revenue)
	assertDecimal(t, "70000", got.CostOfGoodsSold)
	assertDecimal(t, "15000", got.GrossProfit)
	assertDecimal(t, "9234.57", got.OperatingExpenses)
	assertDecimal(t, "5765.43", got.NetProfit)
	assertDecimal(t, "17.65", got.GrossMargin)
	assertDecimal(t, "6.78", got.NetMargin)
	assertDecimal(t, "1500", got.LitersSold)
	assert.Equal(t, int64(50), got.SalesCount)
	assertDecimal(t, "12345.68", got.CashBalance)
}

func TestDashboardService_GetFinancialSummary_NoActivity(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	reports.EXPECT().FuelSalesTotals(ctx, march).Return(nil, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, march).Return(nil, nil)
	reports.EXPECT().ExpenseTotals(ctx, march).Return(nil, nil)
	reports.EXPECT().CashBalanceBefore(ctx, march.To).Return(decimal.Zero, nil)

	got, err := svc.GetFinancialSummary(ctx, march)
	require.NoError(t, err)

	assert.True(t, got.Revenue.IsZero())
	assert.True(t, got.NetProfit.IsZero())
	assert.True(t, got.GrossMargin.IsZero(), "margin of zero revenue is zero")
	assert.True(t, got.NetMargin.IsZero())
	assert.Zero(t, got.SalesCount)
}

func TestDashboardService_GetFinancialSummary_Errors(t *testing.T) {
	dbErr := errors.New("query failed")

	t.Run("sales", func(t *testing.T) {
		svc, reports := newTestDashboardService(t)
		ctx := context.Background()
		reports.EXPECT().FuelSalesTotals(ctx, march).Return(nil, dbErr)

		_, err := svc.GetFinancialSummary(ctx, march)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("cash balance", func(t *testing.T) {
		svc, reports := newTestDashboardService(t)
		ctx := context.Background()
		reports.EXPECT().FuelSalesTotals(ctx, march).Return(nil, nil)
		reports.EXPECT().FuelPurchaseTotals(ctx, march).Return(nil, nil)
		reports.EXPECT().ExpenseTotals(ctx, march).Return(nil, nil)
		reports.EXPECT().CashBalanceBefore(ctx, march.To).Return(decimal.Zero, dbErr)

		_, err := svc.GetFinancialSummary(ctx, march)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("latest unit costs", func(t *testing.T) {
		svc, reports := newTestDashboardService(t)
		ctx := context.Background()
		reports.EXPECT().FuelSalesTotals(ctx, march).Return([]models.FuelSalesTotal{
			{FuelType: "LPG", Liters: dec("10"), Amount: dec("300"), Count: 1},
		}, nil)
		reports.EXPECT().FuelPurchaseTotals(ctx, march).Return(nil, nil)
		reports.EXPECT().ExpenseTotals(ctx, march).Return(nil, nil)
		reports.EXPECT().LatestUnitCosts(ctx, march.To).Return(nil, dbErr)

		_, err := svc.GetFinancialSummary(ctx, march)
		assert.ErrorIs(t, err, dbErr)
	})
}

// ── Profit and loss ──────────────────────────────────────────────────────────

func TestDashboardService_GetProfitLossStatement(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	expectMarchProfitLoss(reports, ctx)

	got, err := svc.GetProfitLossStatement(ctx, march)
	require.NoError(t, err)

	require.Len(t, got.Revenue, 2)
	assert.Equal(t, "AI-95", got.Revenue[0].Name)
	assertDecimal(t, "55000", got.Revenue[0].Amount)
	assert.Equal(t, "DT", got.Revenue[1].Name)
	assertDecimal(t, "30000", got.Revenue[1].Amount)
	assertDecimal(t, "85000", got.TotalRevenue)

	require.Len(t, got.CostOfGoodsSold, 2)
	assertDecimal(t, "45000", got.CostOfGoodsSold[0].Amount, "weighted cost of the month")
	assertDecimal(t, "25000", got.CostOfGoodsSold[1].Amount, "last known cost")
	assertDecimal(t, "70000", got.TotalCostOfGoodsSold)

	assertDecimal(t, "15000", got.GrossProfit)

	require.Len(t, got.Expenses, 2)
	assert.Equal(t, "utilities", got.Expenses[1].Name)
	assertDecimal(t, "1234.57", got.Expenses[1].Amount)
	assertDecimal(t, "9234.57", got.TotalExpenses)
	assertDecimal(t, "5765.43", got.NetProfit)
}

func TestDashboardService_GetProfitLossStatement_UnknownCostIsZero(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	reports.EXPECT().FuelSalesTotals(ctx, march).Return([]models.FuelSalesTotal{
		{FuelType: "LPG", Liters: dec("10"), Amount: dec("300"), Count: 1},
	}, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, march).Return([]models.FuelPurchaseTotal{
		{FuelType: "LPG", Liters: decimal.Zero, Amount: decimal.Zero},
	}, nil)
	reports.EXPECT().ExpenseTotals(ctx, march).Return(nil, nil)
	reports.EXPECT().LatestUnitCosts(ctx, march.To).Return(map[models.FuelType]decimal.Decimal{}, nil)

	got, err := svc.GetProfitLossStatement(ctx, march)
	require.NoError(t, err)

	require.Len(t, got.CostOfGoodsSold, 1)
	assert.True(t, got.CostOfGoodsSold[0].Amount.IsZero())
	assertDecimal(t, "300", got.GrossProfit)
	assert.NotNil(t, got.Expenses)
	assert.Empty(t, got.Expenses)
}

// ── Balance sheet ────────────────────────────────────────────────────────────

func TestDashboardService_GetBalanceSheet(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	asOf := time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)
	before := day(2026, time.March, 16)
	history := models.Period{To: before}

	reports.EXPECT().AccountBalances(ctx, before).Return([]models.AccountBalance{
		{Code: "1000", Name: "Cash", Kind: models.AccountAsset, Current: true, Balance: dec("20000")},
		{Code: "1500", Name: "Equipment", Kind: models.AccountAsset, Balance: dec("150000")},
		{Code: "2000", Name: "Payables", Kind: models.AccountLiability, Current: true, Balance: dec("5000")},
		{Code: "2500", Name: "Bank loan", Kind: models.AccountLiability, Balance: dec("100000")},
		{Code: "3000", Name: "Share capital", Kind: models.AccountEquity, Balance: dec("50000")},
		{Code: "9000", Name: "Memo", Kind: "memo", Balance: dec("1")},
	}, nil)
	reports.EXPECT().FuelSalesTotals(ctx, history).Return([]models.FuelSalesTotal{
		{FuelType: "AI-95", Liters: dec("100"), Amount: dec("20000"), Count: 3},
	}, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, history).Return([]models.FuelPurchaseTotal{
		{FuelType: "AI-95", Liters: dec("100"), Amount: dec("4000")},
	}, nil)
	reports.EXPECT().ExpenseTotals(ctx, history).Return([]models.ExpenseTotal{
		{Category: "rent", Amount: dec("1000")},
	}, nil)

	got, err := svc.GetBalanceSheet(ctx, asOf)
	require.NoError(t, err)

	assert.Equal(t, day(2026, time.March, 15), got.AsOf)
	require.Len(t, got.CurrentAssets, 1)
	assert.Equal(t, "Cash", got.CurrentAssets[0].Name)
	assertDecimal(t, "20000", got.CurrentAssets[0].Amount)
	require.Len(t, got.NonCurrentAssets, 1)
	assert.Equal(t, "Equipment", got.NonCurrentAssets[0].Name)
	assertDecimal(t, "170000", got.TotalAssets)
	assert.Len(t, got.CurrentLiabilities, 1)
	assert.Len(t, got.NonCurrentLiabilities, 1)
	assertDecimal(t, "105000", got.TotalLiabilities)
	assert.Len(t, got.Equity, 1)
	assertDecimal(t, "15000", got.RetainedEarnings)
	assertDecimal(t, "65000", got.TotalEquity)
	assert.True(t, got.Balanced)
	assert.True(t, got.Difference.IsZero())
}

func TestDashboardService_GetBalanceSheet_Unbalanced(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	asOf := day(2026, time.March, 15)
	before := day(2026, time.March, 16)
	history := models.Period{To: before}

	reports.EXPECT().AccountBalances(ctx, before).Return([]models.AccountBalance{
		{Code: "1000", Name: "Cash", Kind: models.AccountAsset, Current: true, Balance: dec("1000")},
	}, nil)
	reports.EXPECT().FuelSalesTotals(ctx, history).Return(nil, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, history).Return(nil, nil)
	reports.EXPECT().ExpenseTotals(ctx, history).Return(nil, nil)

	got, err := svc.GetBalanceSheet(ctx, asOf)
	require.NoError(t, err)

	assert.False(t, got.Balanced)
	assertDecimal(t, "1000", got.Difference)
	assert.NotNil(t, got.NonCurrentAssets)
	assert.NotNil(t, got.CurrentLiabilities)
	assert.NotNil(t, got.NonCurrentLiabilities)
	assert.NotNil(t, got.Equity)
}

func TestDashboardService_GetBalanceSheet_Error(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()
	dbErr := errors.New("query failed")

	reports.EXPECT().AccountBalances(ctx, gomock.Any()).Return(nil, dbErr)

	_, err := svc.GetBalanceSheet(ctx, day(2026, time.March, 15))
	assert.ErrorIs(t, err, dbErr)
}

// ── Cash flow ────────────────────────────────────────────────────────────────

func TestDashboardService_GetCashFlowStatement(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	reports.EXPECT().CashBalanceBefore(ctx, march.From).Return(dec("10000"), nil)
	reports.EXPECT().CashFlowTotals(ctx, march).Return([]models.CashFlowTotal{
		{Activity: models.ActivityOperating, Direction: models.CashIn, Category: "fuel sales", Amount: dec("85000")},
		{Activity: models.ActivityOperating, Direction: models.CashOut, Category: "fuel purchases", Amount: dec("60000")},
		{Activity: models.ActivityOperating, Direction: models.CashOut, Category: "salaries", Amount: dec("8000")},
		{Activity: models.ActivityInvesting, Direction: models.CashOut, Category: "equipment", Amount: dec("20000")},
		{Activity: models.ActivityFinancing, Direction: models.CashIn, Category: "loan", Amount: dec("15000")},
		{Activity: "other", Direction: models.CashIn, Category: "mystery", Amount: dec("999")},
	}, nil)

	got, err := svc.GetCashFlowStatement(ctx, march)
	require.NoError(t, err)

	assertDecimal(t, "10000", got.OpeningBalance)

	assert.Len(t, got.Operating.Inflows, 1)
	assert.Len(t, got.Operating.Outflows, 2)
	assertDecimal(t, "17000", got.Operating.Net)

	assert.Empty(t, got.Investing.Inflows)
	assert.NotNil(t, got.Investing.Inflows)
	assertDecimal(t, "-20000", got.Investing.Net)

	require.Len(t, got.Financing.Inflows, 1)
	assert.Equal(t, "loan", got.Financing.Inflows[0].Name)
	assertDecimal(t, "15000", got.Financing.Net)

	assertDecimal(t, "12000", got.NetChange)
	assertDecimal(t, "22000", got.ClosingBalance)
}

func TestDashboardService_GetCashFlowStatement_UnknownDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	reports := mock.NewMockReportRepository(ctrl)
	var logs bytes.Buffer
	svc := NewDashboardService(reports, logger.New(&logs, "test"))
	ctx := context.Background()

	reports.EXPECT().CashBalanceBefore(ctx, march.From).Return(dec("100"), nil)
	reports.EXPECT().CashFlowTotals(ctx, march).Return([]models.CashFlowTotal{
		{Activity: models.ActivityOperating, Direction: models.CashIn, Category: "fuel sales", Amount: dec("500")},
		{Activity: models.ActivityOperating, Direction: "sideways", Category: "transfer", Amount: dec("300")},
	}, nil)

	got, err := svc.GetCashFlowStatement(ctx, march)
	require.NoError(t, err)

	// движение с неизвестным направлением не попадает в отчёт
	assert.Len(t, got.Operating.Inflows, 1)
	assert.Empty(t, got.Operating.Outflows)
	assertDecimal(t, "500", got.Operating.Net)
	assertDecimal(t, "500", got.NetChange)
	assertDecimal(t, "600", got.ClosingBalance)

	assert.Contains(t, logs.String(), "cash movement of unknown direction skipped")
	assert.Contains(t, logs.String(), "sideways")
}

func TestDashboardService_GetCashFlowStatement_Error(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()
	dbErr := errors.New("query failed")

	reports.EXPECT().CashBalanceBefore(ctx, march.From).Return(dec("10"), nil)
	reports.EXPECT().CashFlowTotals(ctx, march).Return(nil, dbErr)

	_, err := svc.GetCashFlowStatement(ctx, march)
	assert.ErrorIs(t, err, dbErr)
}

// ── Fuel price analysis ──────────────────────────────────────────────────────

func price(ft models.FuelType, source models.PriceSource, value string, at time.Time) models.FuelPrice {
	return models.FuelPrice{FuelType: ft, Price: dec(value), Source: source, EffectiveAt: at}
}

func TestDashboardService_GetFuelPriceAnalysis(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	station, market := models.PriceSourceStation, models.PriceSourceMarket

	reports.EXPECT().LatestFuelPrices(ctx, march.From, models.FuelType("")).Return([]models.FuelPrice{
		price("AI-95", station, "52.00", day(2026, time.February, 20)),
		price("AI-95", market, "51.00", day(2026, time.February, 25)),
		price("DT", station, "60.00", march.From),
	}, nil)
	reports.EXPECT().FuelPrices(ctx, march, models.FuelType("")).Return([]models.FuelPrice{
		price("AI-95", market, "53.50", day(2026, time.March, 15)),
		price("AI-95", station, "54.00", day(2026, time.March, 5)),
		price("AI-95", station, "53.00", day(2026, time.March, 20)),
		price("DT", station, "60.00", march.From),
		price("DT", station, "62.50", day(2026, time.March, 10)),
		price("LPG", market, "30.00", day(2026, time.March, 10)),
	}, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, march).Return([]models.FuelPurchaseTotal{
		{FuelType: "AI-95", Liters: dec("1000"), Amount: dec("45000")},
		{FuelType: "DT", Liters: decimal.Zero, Amount: decimal.Zero},
	}, nil)

	got, err := svc.GetFuelPriceAnalysis(ctx, march, "")
	require.NoError(t, err)

	assert.Equal(t, march, got.Period)
	require.Len(t, got.Fuels, 2, "fuel types without station prices are skipped")

	ai95 := got.Fuels[0]
	assert.Equal(t, models.FuelType("AI-95"), ai95.FuelType)
	assertDecimal(t, "52", ai95.OpeningPrice)
	assertDecimal(t, "53", ai95.CurrentPrice)
	assertDecimal(t, "52", ai95.MinPrice)
	assertDecimal(t, "54", ai95.MaxPrice)
	assertDecimal(t, "53", ai95.AveragePrice)
	assertDecimal(t, "1", ai95.Change)
	assertDecimal(t, "1.92", ai95.ChangePercent)
	assert.Equal(t, 2, ai95.PriceChanges)
	require.NotNil(t, ai95.AveragePurchaseCost)
	assertDecimal(t, "45", *ai95.AveragePurchaseCost)
	require.NotNil(t, ai95.MarginPerLiter)
	assertDecimal(t, "8", *ai95.MarginPerLiter)
	require.NotNil(t, ai95.MarketPrice)
	assertDecimal(t, "53.5", *ai95.MarketPrice)
	require.NotNil(t, ai95.MarketDifference)
	assertDecimal(t, "-0.5", *ai95.MarketDifference)

	dt := got.Fuels[1]
	assert.Equal(t, models.FuelType("DT"), dt.FuelType)
	assertDecimal(t, "60", dt.OpeningPrice)
	assertDecimal(t, "62.5", dt.CurrentPrice)
	assertDecimal(t, "61.25", dt.AveragePrice)
	assertDecimal(t, "4.17", dt.ChangePercent)
	assert.Equal(t, 1, dt.PriceChanges, "a price effective at the period start is not a change")
	assert.Nil(t, dt.AveragePurchaseCost)
	assert.Nil(t, dt.MarginPerLiter)
	assert.Nil(t, dt.MarketPrice)
	assert.Nil(t, dt.MarketDifference)
}

func TestDashboardService_GetFuelPriceAnalysis_NoPrices(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	reports.EXPECT().FuelTypeExists(ctx, models.FuelType("LPG")).Return(true, nil)
	reports.EXPECT().LatestFuelPrices(ctx, march.From, models.FuelType("LPG")).Return(nil, nil)
	reports.EXPECT().FuelPrices(ctx, march, models.FuelType("LPG")).Return(nil, nil)
	reports.EXPECT().FuelPurchaseTotals(ctx, march).Return(nil, nil)

	got, err := svc.GetFuelPriceAnalysis(ctx, march, "LPG")
	require.NoError(t, err)

	assert.NotNil(t, got.Fuels)
	assert.Empty(t, got.Fuels)
}

func TestDashboardService_GetFuelPriceAnalysis_UnknownFuelType(t *testing.T) {
	svc, reports := newTestDashboardService(t)
	ctx := context.Background()

	reports.EXPECT().FuelTypeExists(ctx, models.FuelType("AI-100")).Return(false, nil)

	_, err := svc.GetFuelPriceAnalysis(ctx, march, "AI-100")
	assert.ErrorIs(t, err, ErrUnknownFuelType)
}

func TestGroupPrices_DropsRecordsNotAfterOpening(t *testing.T) {
	station := models.PriceSourceStation
	opening := []models.FuelPrice{price("DT", station, "60", day(2026, time.March, 1))}
	inPeriod := []models.FuelPrice{
		price("DT", station, "60", day(2026, time.March, 1)),
		price("DT", station, "61", day(2026, time.March, 2)),
		price("DT", station, "61", day(2026, time.March, 2)),
	}

	h := groupPrices(opening, inPeriod)

	series := h.series("DT", station)
	require.Len(t, series, 2)
	assertDecimal(t, "61", series[1].Price)
	assert.Empty(t, h.series("DT", models.PriceSourceMarket))
}

func TestPercentOf(t *testing.T) {
	assertDecimal(t, "0", percentOf(dec("5"), decimal.Zero))
	assertDecimal(t, "50", percentOf(dec("5"), dec("10")))
	assertDecimal(t, "33.33", percentOf(dec("1"), dec("3")))
}
