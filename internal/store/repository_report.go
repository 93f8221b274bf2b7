// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type reportRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReportRepository(db *DB, logger *logger.Logger) ReportRepository {
	logger.Debug().Msg("creating report repository")
	return &reportRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reportRepository) FuelSalesTotals(ctx context.Context, period models.Period) ([]models.FuelSalesTotal, error) {
	query := psql.
		Select("fuel_type", "COALESCE(SUM(liters), 0)", "COALESCE(SUM(amount), 0)", "COUNT(*)").
		From("fuel_sales").
		Where(sq.GtOrEq{"sold_at": period.From}).
		Where(sq.Lt{"sold_at": period.To}).
		GroupBy("fuel_type").
		OrderBy("fuel_type")

	var totals []models.FuelSalesTotal
	err := r.selectRows(ctx, "FuelSalesTotals", query, func(rows *sql.Rows) error {
		var t models.FuelSalesTotal
		if err := rows.Scan(&t.FuelType, &t.Liters, &t.Amount, &t.Count); err != nil {
			return err
		}
		totals = append(totals, t)
		return nil
	})

	return totals, err
}

func (r *reportRepository) FuelPurchaseTotals(ctx context.Context, period models.Period) ([]models.FuelPurchaseTotal, error) {
	query := psql.
		Select("fuel_type", "COALESCE(SUM(liters), 0)", "COALESCE(SUM(amount), 0)").
		From("fuel_purchases").
		Where(sq.GtOrEq{"purchased_at": period.From}).
		Where(sq.Lt{"purchased_at": period.To}).
		GroupBy("fuel_type").
		OrderBy("fuel_type")

	var totals []models.FuelPurchaseTotal
	err := r.selectRows(ctx, "FuelPurchaseTotals", query, func(rows *sql.Rows) error {
		var t models.FuelPurchaseTotal
		if err := rows.Scan(&t.FuelType, &t.Liters, &t.Amount); err != nil {
			return err
		}
		totals = append(totals, t)
		return nil
	})

	return totals, err
}

func (r *reportRepository) LatestUnitCosts(ctx context.Context, before time.Time) (map[models.FuelType]decimal.Decimal, error) {
	query := psql.
		Select("DISTINCT ON (fuel_type) fuel_type", "amount / liters").
		From("fuel_purchases").
		Where(sq.Lt{"purchased_at": before}).
		OrderBy("fuel_type", "purchased_at DESC")

	costs := make(map[models.FuelType]decimal.Decimal)
	err := r.selectRows(ctx, "LatestUnitCosts", query, func(rows *sql.Rows) error {
		var (
			fuelType models.FuelType
			cost     decimal.Decimal
		)
		if err := rows.Scan(&fuelType, &cost); err != nil {
			return err
		}
		costs[fuelType] = cost
		return nil
	})

	return costs, err
}

func (r *reportRepository) ExpenseTotals(ctx context.Context, period models.Period) ([]models.ExpenseTotal, error) {
	query := psql.
		Select("category", "COALESCE(SUM(amount), 0)").
		From("expenses").
		Where(sq.GtOrEq{"spent_at": period.From}).
		Where(sq.Lt{"spent_at": period.To}).
		GroupBy("category").
		OrderBy("category")

	var totals []models.ExpenseTotal
	err := r.selectRows(ctx, "ExpenseTotals", query, func(rows *sql.Rows) error {
		var t models.ExpenseTotal
		if err := rows.Scan(&t.Category, &t.Amount); err != nil {
			return err
		}
		totals = append(totals, t)
		return nil
	})

	return totals, err
}

func (r *reportRepository) AccountBalances(ctx context.Context, before time.Time) ([]models.AccountBalance, error) {
	query := psql.
		Select("a.code", "a.name", "a.kind", "a.is_current", "COALESCE(SUM(e.amount), 0)").
		From("ledger_accounts a").
		LeftJoin("ledger_entries e ON e.account_code = a.code AND e.posted_at < ?", before).
		GroupBy("a.code", "a.name", "a.kind", "a.is_current").
		OrderBy("a.code")

	var balances []models.AccountBalance
	err := r.selectRows(ctx, "AccountBalances", query, func(rows *sql.Rows) error {
		var b models.AccountBalance
		if err := rows.Scan(&b.Code, &b.Name, &b.Kind, &b.Current, &b.Balance); err != nil {
			return err
		}
		balances = append(balances, b)
		return nil
	})

	return balances, err
}

func (r *reportRepository) CashFlowTotals(ctx context.Context, period models.Period) ([]models.CashFlowTotal, error) {
	query := psql.
		Select("activity", "direction", "category", "COALESCE(SUM(amount), 0)").
		From("cash_movements").
		Where(sq.GtOrEq{"moved_at": period.From}).
		Where(sq.Lt{"moved_at": period.To}).
		GroupBy("activity", "direction", "category").
		OrderBy("activity", "direction", "category")

	var totals []models.CashFlowTotal
	err := r.selectRows(ctx, "CashFlowTotals", query, func(rows *sql.Rows) error {
		var t models.CashFlowTotal
		if err := rows.Scan(&t.Activity, &t.Direction, &t.Category, &t.Amount); err != nil {
			return err
		}
		totals = append(totals, t)
		return nil
	})

	return totals, err
}

func (r *reportRepository) CashBalanceBefore(ctx context.Context, before time.Time) (decimal.Decimal, error) {
	query := psql.
		Select("COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE -amount END), 0)").
		From("cash_movements").
		Where(sq.Lt{"moved_at": before})

	balance := decimal.Zero
	err := r.selectRows(ctx, "CashBalanceBefore", query, func(rows *sql.Rows) error {
		return rows.Scan(&balance)
	})

	return balance, err
}

func (r *reportRepository) FuelPrices(ctx context.Context, period models.Period, fuelType models.FuelType) ([]models.FuelPrice, error) {
	query := psql.
		Select("fuel_type", "price", "source", "effective_at").
		From("fuel_prices").
		Where(sq.GtOrEq{"effective_at": period.From}).
		Where(sq.Lt{"effective_at": period.To}).
		OrderBy("fuel_type", "source", "effective_at")
	if fuelType != "" {
		query = query.Where(sq.Eq{"fuel_type": fuelType})
	}

	return r.selectPrices(ctx, "FuelPrices", query)
}

func (r *reportRepository) LatestFuelPrices(ctx context.Context, atOrBefore time.Time, fuelType models.FuelType) ([]models.FuelPrice, error) {
	query := psql.
		Select("DISTINCT ON (fuel_type, source) fuel_type", "price", "source", "effective_at").
		From("fuel_prices").
		Where(sq.LtOrEq{"effective_at": atOrBefore}).
		OrderBy("fuel_type", "source", "effective_at DESC")
	if fuelType != "" {
		query = query.Where(sq.Eq{"fuel_type": fuelType})
	}

	return r.selectPrices(ctx, "LatestFuelPrices", query)
}

func (r *reportRepository) FuelTypeExists(ctx context.Context, fuelType models.FuelType) (bool, error) {
	query := psql.
		Select("1").
		Prefix("SELECT EXISTS (").
		From("fuel_types").
		Where(sq.Eq{"code": fuelType}).
		Suffix(")")

	var exists bool
	err := r.selectRows(ctx, "FuelTypeExists", query, func(rows *sql.Rows) error {
		return rows.Scan(&exists)
	})

	return exists, err
}

func (r *reportRepository) selectPrices(ctx context.Context, name string, query sq.SelectBuilder) ([]models.FuelPrice, error) {
	var prices []models.FuelPrice
	err := r.selectRows(ctx, name, query, func(rows *sql.Rows) error {
		var p models.FuelPrice
		if err := rows.Scan(&p.FuelType, &p.Price, &p.Source, &p.EffectiveAt); err != nil {
			return err
		}
		prices = append(prices, p)
		return nil
	})

	return prices, err
}

// selectRows renders query, runs it with retries and calls scan once per
// result row.
func (r *reportRepository) selectRows(ctx context.Context, name string, query sq.SelectBuilder, scan func(rows *sql.Rows) error) error {
	log := logger.FromContext(ctx).With().Str("func", "*reportRepository."+name).Logger()

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, sqlQuery, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			log.Err(err).Msg("error scanning row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Msg("error iterating rows")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
