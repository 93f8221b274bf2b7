package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/validators"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

var reportValidator = validators.NewReportValidator()

type DashboardValidationService struct {
	inner     DashboardService
	validator validators.Validator
	now       func() time.Time
}

func NewDashboardValidationService() DashboardServiceWrapper {
	return &DashboardValidationService{validator: reportValidator, now: time.Now}
}

func (v *DashboardValidationService) Wrap(inner DashboardService) DashboardService {
	v.inner = inner
	return v
}

func (v *DashboardValidationService) GetFinancialSummary(ctx context.Context, period models.Period) (models.FinancialSummary, error) {
	if err := validatePeriod(period); err != nil {
		return models.FinancialSummary{}, err
	}
	return v.inner.GetFinancialSummary(ctx, period)
}

func (v *DashboardValidationService) GetProfitLossStatement(ctx context.Context, period models.Period) (models.ProfitLossStatement, error) {
	if err := validatePeriod(period); err != nil {
		return models.ProfitLossStatement{}, err
	}
	return v.inner.GetProfitLossStatement(ctx, period)
}

func (v *DashboardValidationService) GetBalanceSheet(ctx context.Context, asOf time.Time) (models.BalanceSheet, error) {
	if err := v.validator.Validate(ctx, validators.BalanceDate{AsOf: asOf, Now: v.now()}); err != nil {
		return models.BalanceSheet{}, fmt.Errorf("%w: %w", ErrInvalidBalanceDate, err)
	}
	return v.inner.GetBalanceSheet(ctx, asOf)
}

func (v *DashboardValidationService) GetCashFlowStatement(ctx context.Context, period models.Period) (models.CashFlowStatement, error) {
	if err := validatePeriod(period); err != nil {
		return models.CashFlowStatement{}, err
	}
	return v.inner.GetCashFlowStatement(ctx, period)
}

func (v *DashboardValidationService) GetFuelPriceAnalysis(ctx context.Context, period models.Period, fuelType models.FuelType) (models.FuelPriceAnalysis, error) {
	if err := validatePeriod(period); err != nil {
		return models.FuelPriceAnalysis{}, err
	}
	if err := v.validator.Validate(ctx, fuelType, validators.FieldFuelType); err != nil {
		return models.FuelPriceAnalysis{}, fmt.Errorf("%w: %w", ErrInvalidFuelType, err)
	}
	return v.inner.GetFuelPriceAnalysis(ctx, period, fuelType)
}

func validatePeriod(period models.Period) error {
	err := reportValidator.Validate(context.Background(), period)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrPeriodTooLong):
		return fmt.Errorf("%w: %w", ErrPeriodTooLong, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidPeriod, err)
	}
}
