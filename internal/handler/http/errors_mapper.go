package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fuel-dashboard/internal/logger"
	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/MKhiriev/go-fuel-dashboard/internal/store"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
)

// errorStatuses is checked in order, so an error wrapping several sentinels
// gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{service.ErrInvalidPeriod, http.StatusBadRequest},
	{service.ErrPeriodTooLong, http.StatusBadRequest},
	{service.ErrInvalidFuelType, http.StatusBadRequest},
	{service.ErrInvalidBalanceDate, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{service.ErrUnknownFuelType, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{service.ErrMarketFeedUnavailable, http.StatusBadGateway},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError maps err to a status code and writes it as a JSON error.
// Server side failures are logged in full and answered with the generic
// status text only.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
