// Copyright (c) 2026 Inner Garden. All rights reserved.

package api_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/innergarden/gallery/internal/admin/auth"
	"github.com/innergarden/gallery/internal/api"
	"github.com/innergarden/gallery/internal/core/artwork"
	"github.com/innergarden/gallery/internal/core/collection"
	"github.com/innergarden/gallery/internal/core/favorite"
	"github.com/innergarden/gallery/internal/platform/config"
	"github.com/innergarden/gallery/internal/platform/constants"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/sec"
	"github.com/innergarden/gallery/pkg/pointer"
)

type harness struct {
	handler http.Handler
	tokens  *sec.TokenService
}

func newHarness(t *testing.T, ready bool) harness {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := sec.NewTokenServiceFromKeys(key, &key.PublicKey, constants.AuthIssuer)

	hash, err := sec.HashPasswordCost("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	catalog := collection.NewCatalog()
	repository := artwork.NewMemoryRepository(artwork.Record{
		ID:       "aw-001",
		Title:    artwork.Localized{UK: "Золота Хвиля", EN: "Golden Wave"},
		Category: artwork.CategoryAbstract,
		Moods:    []artwork.Mood{artwork.MoodLuxury},
		Palette:  artwork.PaletteWarm,
		Price:    &artwork.Price{Amount: pointer.To(3900.0), Currency: "EUR"},
	})
	artworkService := artwork.NewService(repository, catalog, logger)
	_, err = artworkService.LoadCatalog(ctx)
	require.NoError(t, err)

	favoriteService := favorite.NewService(favorite.NewMemoryStorage(), catalog)

	check := func(context.Context) error { return nil }
	if !ready {
		check = func(context.Context) error { return errors.New("connection refused") }
	}
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: check,
		CheckCache:    check,
		CatalogSize:   catalog.Len,
	}, logger)

	cfg := &config.Config{
		ServerPort:          "0",
		Environment:         "test",
		DefaultLanguage:     "uk",
		AllowedOriginSuffix: "innergarden.art",
	}

	server := api.NewServer(ctx, cfg, logger, tokens, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Collection: collection.NewHandler(collection.NewEngine(catalog, collection.DefaultWeights()), favoriteService, i18n.NewCatalogue(i18n.DefaultMessages)),
		Artwork:    artwork.NewHandler(artworkService, favoriteService),
		Favorite:   favorite.NewHandler(favoriteService),
		Auth: auth.NewHandler(auth.NewService([]auth.Account{
			{Username: "admin", PasswordHash: hash, Role: sec.RoleAdmin},
		}, tokens, time.Hour)),
	})

	return harness{handler: server.Handler(), tokens: tokens}
}

func (h harness) do(method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, bytes.NewReader(body))
	request.RemoteAddr = "203.0.113.7:5555"
	for name, value := range headers {
		request.Header.Set(name, value)
	}

	recorder := httptest.NewRecorder()
	h.handler.ServeHTTP(recorder, request)
	return recorder
}

func TestServer_Health(t *testing.T) {
	h := newHarness(t, true)

	assert.Equal(t, http.StatusOK, h.do(http.MethodGet, "/health", nil, nil).Code)

	recorder := h.do(http.MethodGet, "/ready", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"artworks":1`)

	degraded := newHarness(t, false).do(http.MethodGet, "/ready", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, degraded.Code)
	assert.Contains(t, degraded.Body.String(), "degraded")
}

/*
TestServer_VisitorFlow toggles a favourite and sees it reflected in search.
*/
func TestServer_VisitorFlow(t *testing.T) {
	h := newHarness(t, true)
	visitor := map[string]string{constants.HeaderXVisitorID: "visitor-42", constants.HeaderAcceptLanguage: "en"}

	recorder := h.do(http.MethodPost, "/api/v1/favorites/aw-001/toggle", nil, visitor)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = h.do(http.MethodGet, "/api/v1/collection?favorites=true", nil, visitor)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "en", recorder.Header().Get(constants.HeaderContentLang))

	var body struct {
		Data []artwork.View `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Golden Wave", body.Data[0].Title)
	assert.True(t, body.Data[0].Favorite)

	recorder = h.do(http.MethodGet, "/api/v1/artworks/aw-001?lang=uk", nil, visitor)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Золота Хвиля")
}

func TestServer_AnonymousVisitorGetsCookie(t *testing.T) {
	h := newHarness(t, true)

	recorder := h.do(http.MethodGet, "/api/v1/collection/facets", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(constants.HeaderXVisitorID))

	var found bool
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.VisitorCookieName {
			found = true
		}
	}
	assert.True(t, found)
}

/*
TestServer_AdminFlow logs in and creates an artwork that becomes searchable.
*/
func TestServer_AdminFlow(t *testing.T) {
	h := newHarness(t, true)

	record := []byte(`{"title":{"uk":"Тиша","en":"Silence"},"category":"minimalism","moods":["calm"],"palette":"neutral","spaces":["wellness"]}`)

	assert.Equal(t, http.StatusUnauthorized, h.do(http.MethodPost, "/api/v1/admin/artworks", record, nil).Code)

	recorder := h.do(http.MethodPost, "/api/v1/admin/login", []byte(`{"username":"admin","password":"s3cret"}`), nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var login struct {
		Data auth.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &login))
	bearer := map[string]string{"Authorization": "Bearer " + login.Data.AccessToken}

	recorder = h.do(http.MethodPost, "/api/v1/admin/artworks", record, bearer)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	recorder = h.do(http.MethodGet, "/api/v1/collection?q=silence&lang=en", nil, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"title":"Silence"`)

	curatorToken, err := h.tokens.GenerateAccessToken("anna", "anna", sec.RoleCurator, time.Hour)
	require.NoError(t, err)
	curator := map[string]string{"Authorization": "Bearer " + curatorToken}
	assert.Equal(t, http.StatusForbidden, h.do(http.MethodDelete, "/api/v1/admin/artworks/aw-001", nil, curator).Code)
	assert.Equal(t, http.StatusNoContent, h.do(http.MethodDelete, "/api/v1/admin/artworks/aw-001", nil, bearer).Code)
	assert.Equal(t, http.StatusNotFound, h.do(http.MethodGet, "/api/v1/artworks/aw-001", nil, nil).Code)
}
