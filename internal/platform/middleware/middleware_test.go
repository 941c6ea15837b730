// Copyright (c) 2026 Inner Garden. All rights reserved.

package middleware_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/middleware"
	"github.com/innergarden/gallery/internal/platform/sec"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestRequestID verifies that a client ID is preserved and a missing one is generated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	t.Run("Preserved", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRequestID, "abc")
		recorder := httptest.NewRecorder()

		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", recorder.Header().Get(constants.HeaderXRequestID))
	})

	t.Run("Generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(constants.HeaderXRequestID))
	})
}

/*
TestLanguage verifies negotiation precedence: query, header, fallback.
*/
func TestLanguage(t *testing.T) {
	tests := []struct {
		name   string
		target string
		accept string
		want   i18n.Language
	}{
		{"QueryWins", "/?lang=de", "en-US,en;q=0.9", i18n.German},
		{"UnknownQueryUsesHeader", "/?lang=fr", "en-GB", i18n.English},
		{"HeaderOnly", "/", "de-AT,de;q=0.8", i18n.German},
		{"Fallback", "/", "", i18n.Ukrainian},
		{"UnsupportedHeader", "/", "ja-JP", i18n.Ukrainian},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen i18n.Language
			handler := middleware.Language(i18n.Ukrainian)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
				seen = ctxutil.GetLanguage(request.Context())
			}))

			request := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.accept != "" {
				request.Header.Set(constants.HeaderAcceptLanguage, tt.accept)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want.String(), recorder.Header().Get(constants.HeaderContentLang))
		})
	}
}

/*
TestVisitor verifies header, cookie and generated visitor identifiers.
*/
func TestVisitor(t *testing.T) {
	var seen string
	handler := middleware.Visitor(false)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetVisitorID(request.Context())
	}))

	t.Run("Header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXVisitorID, "visitor-1")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.Equal(t, "visitor-1", seen)
		assert.Empty(t, recorder.Result().Cookies())
	})

	t.Run("Cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.AddCookie(&http.Cookie{Name: constants.VisitorCookieName, Value: "visitor_2"})
		handler.ServeHTTP(httptest.NewRecorder(), request)

		assert.Equal(t, "visitor_2", seen)
	})

	t.Run("MalformedHeaderIsReplaced", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXVisitorID, "bad id with spaces")
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		assert.NotEqual(t, "bad id with spaces", seen)
		assert.True(t, middleware.ValidVisitorID(seen))

		cookies := recorder.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, seen, cookies[0].Value)
	})
}

func TestValidVisitorID(t *testing.T) {
	assert.True(t, middleware.ValidVisitorID("0190a0b2-7c4e-7abc-8def-0123456789ab"))
	assert.False(t, middleware.ValidVisitorID(""))
	assert.False(t, middleware.ValidVisitorID("ключ"))
	assert.False(t, middleware.ValidVisitorID("a:b"))
	assert.False(t, middleware.ValidVisitorID(string(make([]byte, 65))))
}

/*
TestRateLimit verifies that the bucket rejects requests beyond the burst.
*/
func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, 0.0001, 2)(okHandler())

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constants.HeaderXRealIP, "10.0.0.1")
		last = httptest.NewRecorder()
		handler.ServeHTTP(last, request)
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "1", last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "RATE_LIMITED")

	// A different client has its own bucket.
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set(constants.HeaderXRealIP, "10.0.0.2")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

type corsConfig struct {
	development bool
}

func (c corsConfig) IsDevelopment() bool  { return c.development }
func (c corsConfig) OriginSuffix() string { return "innergarden.art" }

/*
TestCORS verifies suffix matching outside development.
*/
func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		dev     bool
		origin  string
		allowed bool
	}{
		{"ApexDomain", false, "https://innergarden.art", true},
		{"Subdomain", false, "https://admin.innergarden.art", true},
		{"LookAlike", false, "https://evilinnergarden.art", false},
		{"Foreign", false, "https://example.com", false},
		{"Development", true, "http://localhost:5173", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(corsConfig{development: tt.dev})(okHandler())
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set(constants.HeaderOrigin, tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}

	t.Run("Preflight", func(t *testing.T) {
		handler := middleware.CORS(corsConfig{})(okHandler())
		request := httptest.NewRequest(http.MethodOptions, "/", nil)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestPanicRecovery(t *testing.T) {
	handler := middleware.PanicRecovery(discardLogger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_ERROR")
}

type stubVerifier struct {
	claims *sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

/*
TestAuthorization exercises Authenticate combined with RequireRole.
*/
func TestAuthorization(t *testing.T) {
	curator := stubVerifier{claims: &sec.AuthClaims{UserID: "anna", Role: string(sec.RoleCurator)}}

	tests := []struct {
		name     string
		header   string
		required sec.UserRole
		want     int
	}{
		{"Anonymous", "", sec.RoleCurator, http.StatusUnauthorized},
		{"MalformedHeader", "Token good", sec.RoleCurator, http.StatusUnauthorized},
		{"InvalidToken", "Bearer nope", sec.RoleCurator, http.StatusUnauthorized},
		{"Sufficient", "Bearer good", sec.RoleCurator, http.StatusOK},
		{"Insufficient", "Bearer good", sec.RoleAdmin, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(curator)(middleware.RequireRole(tt.required)(okHandler()))
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
