package adapter

import "errors"

var (
	ErrEmptyAddress        = errors.New("empty address")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnavailable         = errors.New("market price feed unavailable")
	ErrInvalidFeedResponse = errors.New("invalid market price feed response")
)
