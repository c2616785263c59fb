// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/results", middleware.WithLogging(handler))

Every request is assigned a UUID, returned in the X-Request-ID header and
available to handlers through RequestIDFrom. Logs request start (method,
path, remote, referer) and completion (status, duration_ms).

# Header Policy

The results page is embedded in a third-party site, so every response
carries a cross-origin and framing policy:

	handler := middleware.HeaderPolicy(cfg.Headers.Policy())(mux)

Two variants exist and a deployment uses exactly one:

	named     Access-Control-Allow-Origin: <origin>
	          X-Frame-Options: ALLOW-FROM <origin>
	          Content-Security-Policy: frame-ancestors <sources>

	wildcard  Access-Control-Allow-Origin: *
	          X-Frame-Options removed
	          Content-Security-Policy: frame-ancestors <sources>

Preflight OPTIONS requests are answered with 204 and never reach the mux.

# Referer Rewrite

RefererRewrite sends requests that carry a Referer to the same path and
records the referer on the request context:

	referer, ok := middleware.RefererFrom(r.Context())

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "unknown location")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
