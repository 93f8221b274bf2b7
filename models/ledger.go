package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelType is the product code of a fuel grade, e.g. "AI-95" or "DT".
type FuelType string

// AccountKind classifies a ledger account on the balance sheet.
type AccountKind string

const (
	AccountAsset     AccountKind = "asset"
	AccountLiability AccountKind = "liability"
	AccountEquity    AccountKind = "equity"
)

// CashActivity is the cash flow statement section of a cash movement.
type CashActivity string

const (
	ActivityOperating CashActivity = "operating"
	ActivityInvesting CashActivity = "investing"
	ActivityFinancing CashActivity = "financing"
)

// CashDirection tells whether a cash movement brings money in or takes it out.
type CashDirection string

const (
	CashIn  CashDirection = "in"
	CashOut CashDirection = "out"
)

// PriceSource tells where a fuel price record comes from.
type PriceSource string

const (
	// PriceSourceStation is the pump price set at the station.
	PriceSourceStation PriceSource = "station"
	// PriceSourceMarket is a reference price collected from the market feed.
	PriceSourceMarket PriceSource = "market"
)

// FuelSalesTotal aggregates fuel sales of one fuel type over a period.
type FuelSalesTotal struct {
	FuelType FuelType
	Liters   decimal.Decimal
	Amount   decimal.Decimal
	Count    int64
}

// FuelPurchaseTotal aggregates fuel purchases of one fuel type over a period.
type FuelPurchaseTotal struct {
	FuelType FuelType
	Liters   decimal.Decimal
	Amount   decimal.Decimal
}

// UnitCost returns the weighted average cost of one liter, or false when no
// liters were purchased.
func (t FuelPurchaseTotal) UnitCost() (decimal.Decimal, bool) {
	if t.Liters.IsZero() {
		return decimal.Zero, false
	}
	return t.Amount.Div(t.Liters), true
}

// ExpenseTotal aggregates operating expenses of one category.
type ExpenseTotal struct {
	Category string
	Amount   decimal.Decimal
}

// AccountBalance is the balance of a ledger account at a point in time.
type AccountBalance struct {
	Code    string
	Name    string
	Kind    AccountKind
	Current bool
	Balance decimal.Decimal
}

// CashFlowTotal aggregates cash movements of one activity, direction and
// category.
type CashFlowTotal struct {
	Activity  CashActivity
	Direction CashDirection
	Category  string
	Amount    decimal.Decimal
}

// FuelPrice is a price record of a fuel type effective from EffectiveAt.
type FuelPrice struct {
	FuelType    FuelType        `json:"fuel_type"`
	Price       decimal.Decimal `json:"price"`
	Source      PriceSource     `json:"source"`
	EffectiveAt time.Time       `json:"effective_at"`
}
