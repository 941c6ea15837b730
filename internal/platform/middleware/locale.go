// Copyright (c) 2026 Inner Garden. All rights reserved.

package middleware

import (
	"net/http"
	"strings"
	"unicode"

	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/pkg/uuid"
)

// # Content Language

// Language negotiates the content language for the request.
//
// # Flow
//  1. An explicit `lang` query parameter wins when it names a supported language.
//  2. Otherwise the Accept-Language header is matched against the supported set.
//  3. Otherwise fallback is used.
//
// The result is stored in the context and echoed as Content-Language.
func Language(fallback i18n.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			lang := i18n.Negotiate(
				request.URL.Query().Get("lang"),
				request.Header.Get(constants.HeaderAcceptLanguage),
				fallback,
			)

			writer.Header().Set(constants.HeaderContentLang, lang.String())
			writer.Header().Add("Vary", constants.HeaderAcceptLanguage)

			ctx := ctxutil.WithLanguage(request.Context(), lang)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Visitor Identification

// Visitor resolves the anonymous visitor identifier that keys favourites.
//
// # Flow
//  1. The X-Visitor-ID header, if well formed.
//  2. The visitor cookie, if well formed.
//  3. A freshly generated identifier, persisted back as a cookie.
//
// The resolved identifier is echoed in the X-Visitor-ID response header.
func Visitor(secureCookie bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			visitorID := strings.TrimSpace(request.Header.Get(constants.HeaderXVisitorID))

			if !ValidVisitorID(visitorID) {
				visitorID = ""
				if cookie, err := request.Cookie(constants.VisitorCookieName); err == nil && ValidVisitorID(cookie.Value) {
					visitorID = cookie.Value
				}
			}

			if visitorID == "" {
				visitorID = uuid.New()
				http.SetCookie(writer, &http.Cookie{
					Name:     constants.VisitorCookieName,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   int(constants.VisitorCookieMaxAge.Seconds()),
					HttpOnly: true,
					Secure:   secureCookie,
					SameSite: http.SameSiteLaxMode,
				})
			}

			writer.Header().Set(constants.HeaderXVisitorID, visitorID)

			ctx := ctxutil.WithVisitorID(request.Context(), visitorID)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// ValidVisitorID accepts short identifiers made of letters, digits, '-' and '_'.
func ValidVisitorID(visitorID string) bool {
	if visitorID == "" || len(visitorID) > constants.MaxVisitorIDLength {
		return false
	}
	for _, r := range visitorID {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
