// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/go-chi/chi/v5"
)

// DashboardHandlers produces the dashboard reports. Every method writes the
// complete response for an already authenticated request.
type DashboardHandlers interface {
	GetFinancialSummary(w http.ResponseWriter, r *http.Request)
	GetProfitLossStatement(w http.ResponseWriter, r *http.Request)
	GetBalanceSheet(w http.ResponseWriter, r *http.Request)
	GetCashFlowStatement(w http.ResponseWriter, r *http.Request)
	GetFuelPriceAnalysis(w http.ResponseWriter, r *http.Request)
}

// route binds a method and a path to the roles allowed to call it and the
// handler that serves it.
type route struct {
	method  string
	pattern string
	roles   []models.Role
	handler http.HandlerFunc
}

// dashboardRoutes returns the dashboard route table. Patterns are relative to
// the mount point and disjoint.
func dashboardRoutes(h DashboardHandlers) []route {
	statements := slices.Clone(models.DashboardRoles)
	priceAnalysis := slices.Clone(models.PriceAnalysisRoles)

	return []route{
		{method: http.MethodGet, pattern: "/financial-summary", roles: statements, handler: h.GetFinancialSummary},
		{method: http.MethodGet, pattern: "/profit-loss", roles: statements, handler: h.GetProfitLossStatement},
		{method: http.MethodGet, pattern: "/balance-sheet", roles: statements, handler: h.GetBalanceSheet},
		{method: http.MethodGet, pattern: "/cash-flow", roles: statements, handler: h.GetCashFlowStatement},
		{method: http.MethodGet, pattern: "/fuel-price-analysis", roles: priceAnalysis, handler: h.GetFuelPriceAnalysis},
	}
}

// NewDashboardRouter builds the router mounted under /api/dashboard. Every
// request passes gate, then the role check of its route, then the handler.
// Unknown paths and unsupported methods get 404 without reaching gate.
func NewDashboardRouter(gate func(http.Handler) http.Handler, h DashboardHandlers) chi.Router {
	router := chi.NewRouter()

	for _, rt := range dashboardRoutes(h) {
		router.With(gate, requireRoles(rt.roles...)).Method(rt.method, rt.pattern, rt.handler)
	}

	router.NotFound(http.NotFound)
	router.MethodNotAllowed(http.NotFound)

	return router
}
