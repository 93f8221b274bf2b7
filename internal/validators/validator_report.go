package validators

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/models"
)

const (
	FieldPeriodBounds = "period_bounds"
	FieldPeriodLength = "period_length"
	FieldFuelType     = "fuel_type"
	FieldAsOf         = "as_of"
)

// MaxReportPeriod bounds the length of a requested report period.
const MaxReportPeriod = 3 * 366 * 24 * time.Hour

var fuelTypePattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{0,15}$`)

// BalanceDate is the date of a balance sheet request together with the
// moment it was asked at. The whole current day is allowed.
type BalanceDate struct {
	AsOf time.Time
	Now  time.Time
}

type ReportValidator struct {
}

func NewReportValidator() Validator {
	return &ReportValidator{}
}

func (v *ReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Period:
		return v.validatePeriod(value, fields...)
	case *models.Period:
		return v.validatePeriod(*value, fields...)

	case models.FuelType:
		return v.validateFuelType(value, fields...)

	case BalanceDate:
		return v.validateBalanceDate(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ReportValidator) validatePeriod(period models.Period, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPeriodBounds, FieldPeriodLength}
	}

	for _, f := range fields {
		switch f {
		case FieldPeriodBounds:
			if !period.From.Before(period.To) {
				return ErrEmptyPeriod
			}
		case FieldPeriodLength:
			if length := period.To.Sub(period.From); length > MaxReportPeriod {
				return fmt.Errorf("%w: %d days", ErrPeriodTooLong, int(length.Hours()/24))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFuelType accepts the empty fuel type, which selects every fuel.
func (v *ReportValidator) validateFuelType(fuelType models.FuelType, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFuelType}
	}

	for _, f := range fields {
		switch f {
		case FieldFuelType:
			if fuelType != "" && !fuelTypePattern.MatchString(string(fuelType)) {
				return fmt.Errorf("%w: %q", ErrInvalidFuelType, fuelType)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ReportValidator) validateBalanceDate(date BalanceDate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAsOf}
	}

	for _, f := range fields {
		switch f {
		case FieldAsOf:
			if date.AsOf.IsZero() {
				return ErrEmptyDate
			}
			if !date.AsOf.Before(models.EndOfDay(date.Now)) {
				return fmt.Errorf("%w: %s", ErrFutureDate, date.AsOf.Format(models.DateLayout))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
