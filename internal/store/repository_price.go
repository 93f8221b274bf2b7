package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/jackc/pgerrcode"
)

type priceRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPriceRepository(db *DB, logger *logger.Logger) PriceRepository {
	logger.Debug().Msg("creating price repository")
	return &priceRepository{
		db:     db,
		logger: logger,
	}
}

// SaveFuelPrices upserts the given price records in one transaction and
// returns the number of affected rows. A record for an existing
// (fuel_type, source, effective_at) triple overwrites the stored price.
func (r *priceRepository) SaveFuelPrices(ctx context.Context, prices []models.FuelPrice) (int64, error) {
	if len(prices) == 0 {
		return 0, nil
	}
	log := logger.FromContext(ctx).With().Str("func", "*priceRepository.SaveFuelPrices").Logger()

	query := psql.
		Insert("fuel_prices").
		Columns("fuel_type", "price", "source", "effective_at").
		Suffix("ON CONFLICT (fuel_type, source, effective_at) DO UPDATE SET price = EXCLUDED.price")
	for _, p := range prices {
		query = query.Values(p.FuelType, p.Price, p.Source, p.EffectiveAt)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		log.Err(err).Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("error beginning transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	result, err := tx.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Msg("error inserting fuel prices")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return 0, ErrUnknownFuelType
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("error committing transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	saved, err := result.RowsAffected()
	if err != nil {
		return int64(len(prices)), nil
	}
	return saved, nil
}
