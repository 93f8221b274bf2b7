package http

import (
	"github.com/MKhiriev/go-fuel-dashboard/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const dashboardBasePath = "/api/dashboard"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// user management
	router.Group(func(r chi.Router) {
		r.Use(h.auth, requireRoles(models.RoleAdmin))
		r.Post("/api/auth/register", h.register)
	})

	dashboard := newDashboardController(h.services.DashboardService)
	router.Mount(dashboardBasePath, NewDashboardRouter(h.auth, dashboard))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
