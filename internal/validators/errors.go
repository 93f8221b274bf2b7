package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPeriod     = errors.New("period start must be before period end")
	ErrPeriodTooLong   = errors.New("period is longer than allowed")
	ErrInvalidFuelType = errors.New("fuel type must be an upper case product code")
	ErrEmptyDate       = errors.New("date is required")
	ErrFutureDate      = errors.New("date is in the future")

	ErrEmptyLogin      = errors.New("login is required")
	ErrLoginTooLong    = errors.New("login is too long")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrInvalidRole     = errors.New("unknown role")
)
