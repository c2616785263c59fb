// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"net/http"
	"strings"
)

// Policy variants. Exactly one applies to a deployment.
const (
	VariantNamed    = "named"
	VariantWildcard = "wildcard"
)

// Policy is the cross-origin and framing policy applied to every response
type Policy struct {
	Variant        string
	EmbedOrigin    string
	FrameAncestors []string
}

// AllowOrigin is the Access-Control-Allow-Origin value for the variant
func (p Policy) AllowOrigin() string {
	if p.Variant == VariantWildcard {
		return "*"
	}
	return p.EmbedOrigin
}

// ContentSecurityPolicy lists the origins allowed to frame the page
func (p Policy) ContentSecurityPolicy() string {
	return "frame-ancestors " + strings.Join(p.FrameAncestors, " ")
}

// Apply sets the policy headers on h. The wildcard variant drops X-Frame-Options
// and relies on the CSP directive alone.
func (p Policy) Apply(h http.Header) {
	h.Set("Access-Control-Allow-Origin", p.AllowOrigin())
	h.Set("Content-Security-Policy", p.ContentSecurityPolicy())
	if p.Variant == VariantWildcard {
		h.Del("X-Frame-Options")
	} else {
		h.Set("X-Frame-Options", "ALLOW-FROM "+p.EmbedOrigin)
	}
}

// HeaderPolicy applies p to every response, including 404s, and answers preflight requests
func HeaderPolicy(p Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p.Apply(w.Header())

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type refererKey struct{}

// RefererRewrite routes a request that carries a Referer to its own path.
// The rewrite leaves the URL untouched; it only exposes the referer through
// RefererFrom to the handlers behind it.
func RefererRewrite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if referer := r.Header.Get("Referer"); referer != "" {
			r = r.WithContext(context.WithValue(r.Context(), refererKey{}, referer))
		}
		next.ServeHTTP(w, r)
	})
}

// RefererFrom returns the referer captured by RefererRewrite
func RefererFrom(ctx context.Context) (string, bool) {
	referer, ok := ctx.Value(refererKey{}).(string)
	return referer, ok
}
