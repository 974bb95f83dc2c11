// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod builds the handler registered via
// [chi.Mux.MethodNotAllowed].
//
// Where chi would answer 405 Method Not Allowed for a known path hit with an
// unregistered method, this handler answers 404 Not Found instead, so an
// unsupported method reveals nothing about which routes exist. When the
// method turns out to be registered after all, the request is handed back to
// the router's normal ServeHTTP pipeline.
//
// Matching is an exact comparison of each registered route pattern against
// the raw request path; parameterised and wildcard segments are not expanded
// here.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		// Search for a route whose pattern exactly matches the requested path.
		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		// If the matched route does not handle the requested HTTP method,
		// return 404 instead of the default 405 to avoid leaking route existence.
		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		// The method is registered, so delegate to the router's normal pipeline.
		router.ServeHTTP(w, r)
	}
}
