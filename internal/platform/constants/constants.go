// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuer and token lifetime.
  - Visitors: favourites key namespace and visitor identification.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "innergarden-gallery"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// StartupTimeout bounds database and cache connection attempts at boot.
	StartupTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 50.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	// Search-as-you-type bursts several requests per keystroke pause.
	DefaultRateLimitBurst = 100

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in JWTs.
	AuthIssuer = "innergarden.art"

	// AdminTokenTTL is how long an admin panel access token stays valid.
	AdminTokenTTL = 8 * time.Hour
)

// # Visitors & Favourites

const (
	// VisitorCookieName stores the anonymous visitor identifier.
	VisitorCookieName = "ig_visitor"

	// VisitorCookieMaxAge keeps the visitor identifier for a year.
	VisitorCookieMaxAge = 365 * 24 * time.Hour

	// FavoritesTTL is refreshed on every favourites write.
	FavoritesTTL = 365 * 24 * time.Hour

	// MaxVisitorIDLength bounds client-supplied visitor identifiers.
	MaxVisitorIDLength = 64
)

// # HTTP Headers

const (
	HeaderXRequestID     = "X-Request-ID"
	HeaderXVisitorID     = "X-Visitor-ID"
	HeaderXRealIP        = "X-Real-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderOrigin         = "Origin"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentLang    = "Content-Language"
)

// # JSON Field Identifiers

const (
	FieldStatus = "status"
	FieldChecks = "checks"
)

// # Redis Prefixes (Key Taxonomy)

const (
	// RedisPrefixFavorites namespaces the per-visitor favourites list.
	RedisPrefixFavorites = "innergarden:favorites:"
)
