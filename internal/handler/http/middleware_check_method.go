// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a
// registered route but the method is not handled. This handler answers 404
// Not Found instead, so an unsupported method looks exactly like an unknown
// path.
//
// The match is delegated to [chi.Mux.Match], which also resolves routes of
// mounted sub-routers. If the method is in fact routable the request is
// routed again from scratch.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		// drop the exhausted routing state so the router starts over
		ctx := context.WithValue(r.Context(), chi.RouteCtxKey, nil)
		router.ServeHTTP(w, r.WithContext(ctx))
	}
}
