package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid login or password")
	ErrInvalidRole         = errors.New("invalid role")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidPeriod      = errors.New("invalid report period")
	ErrPeriodTooLong      = errors.New("report period is too long")
	ErrInvalidFuelType    = errors.New("invalid fuel type")
	ErrUnknownFuelType    = errors.New("unknown fuel type")
	ErrInvalidBalanceDate = errors.New("invalid balance sheet date")

	ErrMarketFeedUnavailable = errors.New("market price feed is unavailable")
)
