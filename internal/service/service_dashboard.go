// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type dashboardService struct {
	reports store.ReportRepository
	logger  *logger.Logger
}

func NewDashboardService(reports store.ReportRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		reports: reports,
		logger:  logger,
	}
}

// profitLoss holds the income statement figures of a period. Line amounts
// are rounded, totals are sums of the rounded lines.
type profitLoss struct {
	revenue       []models.Line
	totalRevenue  decimal.Decimal
	cogs          []models.Line
	totalCOGS     decimal.Decimal
	expenses      []models.Line
	totalExpenses decimal.Decimal
	litersSold    decimal.Decimal
	salesCount    int64
}

func (p profitLoss) grossProfit() decimal.Decimal {
	return p.totalRevenue.Sub(p.totalCOGS)
}

func (p profitLoss) netProfit() decimal.Decimal {
	return p.grossProfit().Sub(p.totalExpenses)
}

func (s *dashboardService) GetFinancialSummary(ctx context.Context, period models.Period) (models.FinancialSummary, error) {
	pl, err := s.computeProfitLoss(ctx, period)
	if err != nil {
		return models.FinancialSummary{}, err
	}

	cash, err := s.reports.CashBalanceBefore(ctx, period.To)
	if err != nil {
		return models.FinancialSummary{}, fmt.Errorf("error getting cash balance: %w", err)
	}

	gross, net := pl.grossProfit(), pl.netProfit()

	return models.FinancialSummary{
		Period:            period,
		Revenue:           pl.totalRevenue,
		CostOfGoodsSold:   pl.totalCOGS,
		GrossProfit:       gross,
		OperatingExpenses: pl.totalExpenses,
		NetProfit:         net,
		GrossMargin:       percentOf(gross, pl.totalRevenue),
		NetMargin:         percentOf(net, pl.totalRevenue),
		LitersSold:        pl.litersSold,
		SalesCount:        pl.salesCount,
		CashBalance:       round(cash),
	}, nil
}

func (s *dashboardService) GetProfitLossStatement(ctx context.Context, period models.Period) (models.ProfitLossStatement, error) {
	pl, err := s.computeProfitLoss(ctx, period)
	if err != nil {
		return models.ProfitLossStatement{}, err
	}

	return models.ProfitLossStatement{
		Period:               period,
		Revenue:              pl.revenue,
		TotalRevenue:         pl.totalRevenue,
		CostOfGoodsSold:      pl.cogs,
		TotalCostOfGoodsSold: pl.totalCOGS,
		GrossProfit:          pl.grossProfit(),
		Expenses:             pl.expenses,
		TotalExpenses:        pl.totalExpenses,
		NetProfit:            pl.netProfit(),
	}, nil
}

// GetBalanceSheet reports balances at the end of the asOf day. Retained
// earnings are the net profit of all history up to that moment.
func (s *dashboardService) GetBalanceSheet(ctx context.Context, asOf time.Time) (models.BalanceSheet, error) {
	before := models.EndOfDay(asOf)

	balances, err := s.reports.AccountBalances(ctx, before)
	if err != nil {
		return models.BalanceSheet{}, fmt.Errorf("error getting account balances: %w", err)
	}

	pl, err := s.computeProfitLoss(ctx, models.Period{To: before})
	if err != nil {
		return models.BalanceSheet{}, err
	}

	sheet := models.BalanceSheet{
		AsOf:                  before.AddDate(0, 0, -1),
		CurrentAssets:         []models.Line{},
		NonCurrentAssets:      []models.Line{},
		CurrentLiabilities:    []models.Line{},
		NonCurrentLiabilities: []models.Line{},
		Equity:                []models.Line{},
		RetainedEarnings:      pl.netProfit(),
	}

	for _, b := range balances {
		line := models.Line{Name: b.Name, Amount: round(b.Balance)}

		switch b.Kind {
		case models.AccountAsset:
			if b.Current {
				sheet.CurrentAssets = append(sheet.CurrentAssets, line)
			} else {
				sheet.NonCurrentAssets = append(sheet.NonCurrentAssets, line)
			}
			sheet.TotalAssets = sheet.TotalAssets.Add(line.Amount)
		case models.AccountLiability:
			if b.Current {
				sheet.CurrentLiabilities = append(sheet.CurrentLiabilities, line)
			} else {
				sheet.NonCurrentLiabilities = append(sheet.NonCurrentLiabilities, line)
			}
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(line.Amount)
		case models.AccountEquity:
			sheet.Equity = append(sheet.Equity, line)
			sheet.TotalEquity = sheet.TotalEquity.Add(line.Amount)
		default:
			s.logger.Warn().Str("account", b.Code).Str("kind", string(b.Kind)).Msg("ledger account of unknown kind skipped")
		}
	}

	sheet.TotalEquity = sheet.TotalEquity.Add(sheet.RetainedEarnings)
	sheet.Difference = sheet.TotalAssets.Sub(sheet.TotalLiabilities.Add(sheet.TotalEquity))
	sheet.Balanced = sheet.Difference.IsZero()

	return sheet, nil
}

func (s *dashboardService) GetCashFlowStatement(ctx context.Context, period models.Period) (models.CashFlowStatement, error) {
	opening, err := s.reports.CashBalanceBefore(ctx, period.From)
	if err != nil {
		return models.CashFlowStatement{}, fmt.Errorf("error getting opening cash balance: %w", err)
	}

	totals, err := s.reports.CashFlowTotals(ctx, period)
	if err != nil {
		return models.CashFlowStatement{}, fmt.Errorf("error getting cash flow totals: %w", err)
	}

	sections := map[models.CashActivity]*models.CashFlowSection{
		models.ActivityOperating: newCashFlowSection(),
		models.ActivityInvesting: newCashFlowSection(),
		models.ActivityFinancing: newCashFlowSection(),
	}

	for _, t := range totals {
		section, ok := sections[t.Activity]
		if !ok {
			s.logger.Warn().Str("activity", string(t.Activity)).Msg("cash movement of unknown activity skipped")
			continue
		}

		line := models.Line{Name: t.Category, Amount: round(t.Amount)}
		switch t.Direction {
		case models.CashIn:
			section.Inflows = append(section.Inflows, line)
			section.Net = section.Net.Add(line.Amount)
		case models.CashOut:
			section.Outflows = append(section.Outflows, line)
			section.Net = section.Net.Sub(line.Amount)
		default:
			s.logger.Warn().Str("direction", string(t.Direction)).Str("category", t.Category).
				Msg("cash movement of unknown direction skipped")
		}
	}

	statement := models.CashFlowStatement{
		Period:         period,
		OpeningBalance: round(opening),
		Operating:      *sections[models.ActivityOperating],
		Investing:      *sections[models.ActivityInvesting],
		Financing:      *sections[models.ActivityFinancing],
	}
	statement.NetChange = statement.Operating.Net.Add(statement.Investing.Net).Add(statement.Financing.Net)
	statement.ClosingBalance = statement.OpeningBalance.Add(statement.NetChange)

	return statement, nil
}

func (s *dashboardService) GetFuelPriceAnalysis(ctx context.Context, period models.Period, fuelType models.FuelType) (models.FuelPriceAnalysis, error) {
	if fuelType != "" {
		exists, err := s.reports.FuelTypeExists(ctx, fuelType)
		if err != nil {
			return models.FuelPriceAnalysis{}, fmt.Errorf("error checking fuel type: %w", err)
		}
		if !exists {
			return models.FuelPriceAnalysis{}, fmt.Errorf("%w: %s", ErrUnknownFuelType, fuelType)
		}
	}

	opening, err := s.reports.LatestFuelPrices(ctx, period.From, fuelType)
	if err != nil {
		return models.FuelPriceAnalysis{}, fmt.Errorf("error getting opening prices: %w", err)
	}

	inPeriod, err := s.reports.FuelPrices(ctx, period, fuelType)
	if err != nil {
		return models.FuelPriceAnalysis{}, fmt.Errorf("error getting period prices: %w", err)
	}

	purchases, err := s.reports.FuelPurchaseTotals(ctx, period)
	if err != nil {
		return models.FuelPriceAnalysis{}, fmt.Errorf("error getting purchase totals: %w", err)
	}

	history := groupPrices(opening, inPeriod)
	costs := make(map[models.FuelType]decimal.Decimal, len(purchases))
	for _, p := range purchases {
		if cost, ok := p.UnitCost(); ok {
			costs[p.FuelType] = cost
		}
	}

	analysis := models.FuelPriceAnalysis{Period: period, Fuels: []models.FuelPriceStats{}}
	for _, ft := range history.fuelTypes() {
		station := history.series(ft, models.PriceSourceStation)
		if len(station) == 0 {
			continue
		}

		stats := priceStats(ft, station)

		if cost, ok := costs[ft]; ok {
			stats.AveragePurchaseCost = decimalPtr(round(cost))
			stats.MarginPerLiter = decimalPtr(stats.CurrentPrice.Sub(*stats.AveragePurchaseCost))
		}

		if market := history.series(ft, models.PriceSourceMarket); len(market) > 0 {
			marketPrice := round(market[len(market)-1].Price)
			stats.MarketPrice = decimalPtr(marketPrice)
			stats.MarketDifference = decimalPtr(stats.CurrentPrice.Sub(marketPrice))
		}

		analysis.Fuels = append(analysis.Fuels, stats)
	}

	return analysis, nil
}

// computeProfitLoss builds the income statement of period. Cost of goods
// sold uses the weighted average purchase cost of the period, falling back
// to the last known unit cost and then to zero.
func (s *dashboardService) computeProfitLoss(ctx context.Context, period models.Period) (profitLoss, error) {
	sales, err := s.reports.FuelSalesTotals(ctx, period)
	if err != nil {
		return profitLoss{}, fmt.Errorf("error getting fuel sales: %w", err)
	}

	purchases, err := s.reports.FuelPurchaseTotals(ctx, period)
	if err != nil {
		return profitLoss{}, fmt.Errorf("error getting fuel purchases: %w", err)
	}

	expenses, err := s.reports.ExpenseTotals(ctx, period)
	if err != nil {
		return profitLoss{}, fmt.Errorf("error getting expenses: %w", err)
	}

	unitCosts := make(map[models.FuelType]decimal.Decimal, len(purchases))
	for _, p := range purchases {
		if cost, ok := p.UnitCost(); ok {
			unitCosts[p.FuelType] = cost
		}
	}

	var latestCosts map[models.FuelType]decimal.Decimal
	pl := profitLoss{
		revenue:  make([]models.Line, 0, len(sales)),
		cogs:     make([]models.Line, 0, len(sales)),
		expenses: make([]models.Line, 0, len(expenses)),
	}

	for _, sale := range sales {
		cost, ok := unitCosts[sale.FuelType]
		if !ok {
			if latestCosts == nil {
				latestCosts, err = s.reports.LatestUnitCosts(ctx, period.To)
				if err != nil {
					return profitLoss{}, fmt.Errorf("error getting latest unit costs: %w", err)
				}
			}
			cost = latestCosts[sale.FuelType]
		}

		revenue := round(sale.Amount)
		cogs := round(sale.Liters.Mul(cost))

		pl.revenue = append(pl.revenue, models.Line{Name: string(sale.FuelType), Amount: revenue})
		pl.cogs = append(pl.cogs, models.Line{Name: string(sale.FuelType), Amount: cogs})
		pl.totalRevenue = pl.totalRevenue.Add(revenue)
		pl.totalCOGS = pl.totalCOGS.Add(cogs)
		pl.litersSold = pl.litersSold.Add(sale.Liters)
		pl.salesCount += sale.Count
	}

	for _, e := range expenses {
		amount := round(e.Amount)
		pl.expenses = append(pl.expenses, models.Line{Name: e.Category, Amount: amount})
		pl.totalExpenses = pl.totalExpenses.Add(amount)
	}

	return pl, nil
}

// priceHistory indexes price records by fuel type and source, each series
// in effective order starting with the opening record.
type priceHistory map[models.FuelType]map[models.PriceSource][]models.FuelPrice

// groupPrices merges the opening records with the records inside the period.
// In-period records not later than the opening record are dropped so a
// price effective exactly at the period start is counted once.
func groupPrices(opening, inPeriod []models.FuelPrice) priceHistory {
	h := priceHistory{}
	add := func(p models.FuelPrice) {
		if h[p.FuelType] == nil {
			h[p.FuelType] = map[models.PriceSource][]models.FuelPrice{}
		}
		h[p.FuelType][p.Source] = append(h[p.FuelType][p.Source], p)
	}

	for _, p := range opening {
		add(p)
	}

	for _, p := range inPeriod {
		series := h[p.FuelType][p.Source]
		if len(series) > 0 && !p.EffectiveAt.After(series[len(series)-1].EffectiveAt) {
			continue
		}
		add(p)
	}

	return h
}

func (h priceHistory) fuelTypes() []models.FuelType {
	types := make([]models.FuelType, 0, len(h))
	for ft := range h {
		types = append(types, ft)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func (h priceHistory) series(ft models.FuelType, source models.PriceSource) []models.FuelPrice {
	return h[ft][source]
}

// priceStats summarises a non-empty station price series. The first record
// is the opening price; every later record is a price change.
func priceStats(ft models.FuelType, series []models.FuelPrice) models.FuelPriceStats {
	opening := round(series[0].Price)
	current := round(series[len(series)-1].Price)

	minPrice, maxPrice, sum := opening, opening, decimal.Zero
	for _, p := range series {
		price := round(p.Price)
		minPrice = decimal.Min(minPrice, price)
		maxPrice = decimal.Max(maxPrice, price)
		sum = sum.Add(price)
	}

	change := current.Sub(opening)

	return models.FuelPriceStats{
		FuelType:      ft,
		OpeningPrice:  opening,
		CurrentPrice:  current,
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		AveragePrice:  round(sum.Div(decimal.NewFromInt(int64(len(series))))),
		Change:        change,
		ChangePercent: percentOf(change, opening),
		PriceChanges:  len(series) - 1,
	}
}

func newCashFlowSection() *models.CashFlowSection {
	return &models.CashFlowSection{
		Inflows:  []models.Line{},
		Outflows: []models.Line{},
	}
}

// percentOf returns part as a percent of whole, or zero when whole is zero.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return round(part.Div(whole).Mul(hundred))
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
