package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a named amount of a financial statement.
type Line struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialSummary is the headline view of the station performance over a
// period.
type FinancialSummary struct {
	Period            Period          `json:"period"`
	Revenue           decimal.Decimal `json:"revenue"`
	CostOfGoodsSold   decimal.Decimal `json:"cost_of_goods_sold"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	// GrossMargin and NetMargin are percents of revenue.
	GrossMargin decimal.Decimal `json:"gross_margin"`
	NetMargin   decimal.Decimal `json:"net_margin"`
	LitersSold  decimal.Decimal `json:"liters_sold"`
	SalesCount  int64           `json:"sales_count"`
	// CashBalance is the cash position at the end of the period.
	CashBalance decimal.Decimal `json:"cash_balance"`
}

// ProfitLossStatement breaks revenue, cost of goods sold and expenses down
// by fuel type and expense category.
type ProfitLossStatement struct {
	Period               Period          `json:"period"`
	Revenue              []Line          `json:"revenue"`
	TotalRevenue         decimal.Decimal `json:"total_revenue"`
	CostOfGoodsSold      []Line          `json:"cost_of_goods_sold"`
	TotalCostOfGoodsSold decimal.Decimal `json:"total_cost_of_goods_sold"`
	GrossProfit          decimal.Decimal `json:"gross_profit"`
	Expenses             []Line          `json:"expenses"`
	TotalExpenses        decimal.Decimal `json:"total_expenses"`
	NetProfit            decimal.Decimal `json:"net_profit"`
}

// BalanceSheet is the statement of financial position at AsOf.
type BalanceSheet struct {
	AsOf                  time.Time       `json:"as_of"`
	CurrentAssets         []Line          `json:"current_assets"`
	NonCurrentAssets      []Line          `json:"non_current_assets"`
	TotalAssets           decimal.Decimal `json:"total_assets"`
	CurrentLiabilities    []Line          `json:"current_liabilities"`
	NonCurrentLiabilities []Line          `json:"non_current_liabilities"`
	TotalLiabilities      decimal.Decimal `json:"total_liabilities"`
	Equity                []Line          `json:"equity"`
	RetainedEarnings      decimal.Decimal `json:"retained_earnings"`
	TotalEquity           decimal.Decimal `json:"total_equity"`
	Balanced              bool            `json:"balanced"`
	// Difference is assets minus liabilities and equity; zero when balanced.
	Difference decimal.Decimal `json:"difference"`
}

// CashFlowSection is one activity section of the cash flow statement.
type CashFlowSection struct {
	Inflows  []Line          `json:"inflows"`
	Outflows []Line          `json:"outflows"`
	Net      decimal.Decimal `json:"net"`
}

// CashFlowStatement reconciles the opening and closing cash position.
type CashFlowStatement struct {
	Period         Period          `json:"period"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	Operating      CashFlowSection `json:"operating"`
	Investing      CashFlowSection `json:"investing"`
	Financing      CashFlowSection `json:"financing"`
	NetChange      decimal.Decimal `json:"net_change"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
}

// FuelPriceStats describes how the pump price of one fuel type moved over a
// period and how it relates to cost and market.
type FuelPriceStats struct {
	FuelType            FuelType         `json:"fuel_type"`
	OpeningPrice        decimal.Decimal  `json:"opening_price"`
	CurrentPrice        decimal.Decimal  `json:"current_price"`
	MinPrice            decimal.Decimal  `json:"min_price"`
	MaxPrice            decimal.Decimal  `json:"max_price"`
	AveragePrice        decimal.Decimal  `json:"average_price"`
	Change              decimal.Decimal  `json:"change"`
	ChangePercent       decimal.Decimal  `json:"change_percent"`
	PriceChanges        int              `json:"price_changes"`
	AveragePurchaseCost *decimal.Decimal `json:"average_purchase_cost,omitempty"`
	MarginPerLiter      *decimal.Decimal `json:"margin_per_liter,omitempty"`
	MarketPrice         *decimal.Decimal `json:"market_price,omitempty"`
	MarketDifference    *decimal.Decimal `json:"market_difference,omitempty"`
}

// FuelPriceAnalysis groups price statistics of every analysed fuel type.
type FuelPriceAnalysis struct {
	Period Period           `json:"period"`
	Fuels  []FuelPriceStats `json:"fuels"`
}
