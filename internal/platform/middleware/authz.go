// Copyright (c) 2026 Inner Garden. All rights reserved.

package middleware

import (
	"net/http"
	"strings"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/respond"
	"github.com/innergarden/gallery/internal/platform/sec"
)

// TokenVerifier checks admin bearer tokens. [*sec.TokenService] satisfies it.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// # Admin Authentication

/*
Authenticate resolves the admin panel bearer token, if any.

Description: Requests without an Authorization header pass through
untouched; the public collection never carries one. A malformed header or a
token that fails verification is rejected with 401 rather than downgraded
to anonymous.

Parameters:
  - verifier: TokenVerifier

Returns:
  - func(http.Handler) http.Handler
*/
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			header := request.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(writer, request)
				return
			}

			scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
			token = strings.TrimSpace(token)
			if !found || token == "" || !strings.EqualFold(scheme, "bearer") {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			logger := ctxutil.GetLogger(request.Context()).With("admin", claims.Username, "role", claims.Role)
			context := ctxutil.WithLogger(ctxutil.WithAuthUser(request.Context(), claims), logger)
			next.ServeHTTP(writer, request.WithContext(context))
		})
	}
}

// RequireAuth rejects requests that [Authenticate] left anonymous.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole admits admins whose role ranks at least role.
// Anonymous requests get 401, insufficient roles get 403.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if !sec.UserRole(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
