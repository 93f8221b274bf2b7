package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-fuel-dashboard/internal/service"
	"github.com/MKhiriev/go-fuel-dashboard/internal/utils"
	"github.com/MKhiriev/go-fuel-dashboard/models"
)

// Query parameters accepted by the dashboard endpoints. Dates use
// [models.DateLayout].
const (
	queryFrom     = "from"
	queryTo       = "to"
	queryAsOf     = "as_of"
	queryFuelType = "fuel_type"
)

// dashboardController implements [DashboardHandlers] on top of
// [service.DashboardService].
type dashboardController struct {
	service service.DashboardService
	now     func() time.Time
}

func newDashboardController(svc service.DashboardService) *dashboardController {
	return &dashboardController{service: svc, now: time.Now}
}

func (c *dashboardController) GetFinancialSummary(w http.ResponseWriter, r *http.Request) {
	period, err := c.periodFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	summary, err := c.service.GetFinancialSummary(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (c *dashboardController) GetProfitLossStatement(w http.ResponseWriter, r *http.Request) {
	period, err := c.periodFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	statement, err := c.service.GetProfitLossStatement(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, statement, http.StatusOK)
}

func (c *dashboardController) GetBalanceSheet(w http.ResponseWriter, r *http.Request) {
	asOf := c.now().UTC()
	if raw := r.URL.Query().Get(queryAsOf); raw != "" {
		var err error
		if asOf, err = parseDate(queryAsOf, raw); err != nil {
			writeServiceError(w, r, err)
			return
		}
	}

	sheet, err := c.service.GetBalanceSheet(r.Context(), asOf)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, sheet, http.StatusOK)
}

func (c *dashboardController) GetCashFlowStatement(w http.ResponseWriter, r *http.Request) {
	period, err := c.periodFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	statement, err := c.service.GetCashFlowStatement(r.Context(), period)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, statement, http.StatusOK)
}

func (c *dashboardController) GetFuelPriceAnalysis(w http.ResponseWriter, r *http.Request) {
	period, err := c.periodFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	fuelType := models.FuelType(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(queryFuelType))))

	analysis, err := c.service.GetFuelPriceAnalysis(r.Context(), period, fuelType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, analysis, http.StatusOK)
}

// periodFromQuery reads the inclusive from/to days. A missing from defaults
// to the first day of the current month and a missing to defaults to today.
func (c *dashboardController) periodFromQuery(r *http.Request) (models.Period, error) {
	query := r.URL.Query()
	period := models.CurrentMonth(c.now())

	from, to := period.From, period.To.AddDate(0, 0, -1)
	var err error

	if raw := query.Get(queryFrom); raw != "" {
		if from, err = parseDate(queryFrom, raw); err != nil {
			return models.Period{}, err
		}
	}
	if raw := query.Get(queryTo); raw != "" {
		if to, err = parseDate(queryTo, raw); err != nil {
			return models.Period{}, err
		}
	}

	return models.NewPeriod(from, to), nil
}

func parseDate(param, raw string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be %s, got %q", ErrInvalidQueryParam, param, models.DateLayout, raw)
	}
	return t, nil
}
