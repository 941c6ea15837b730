// Copyright (c) 2026 Inner Garden. All rights reserved.

package auth_test

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/innergarden/gallery/internal/admin/auth"
	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/sec"
)

func newService(t *testing.T) (*auth.Service, *sec.TokenService) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	tokens := sec.NewTokenServiceFromKeys(key, &key.PublicKey, "innergarden.art")

	adminHash, err := sec.HashPasswordCost("s3cret-admin", bcrypt.MinCost)
	require.NoError(t, err)
	curatorHash, err := sec.HashPasswordCost("s3cret-curator", bcrypt.MinCost)
	require.NoError(t, err)

	service := auth.NewService([]auth.Account{
		{Username: "admin", PasswordHash: adminHash, Role: sec.RoleAdmin},
		{Username: "Anna", PasswordHash: curatorHash, Role: sec.RoleCurator},
		{Username: "ghost", PasswordHash: adminHash, Role: sec.UserRole("root")},
		{Username: "", PasswordHash: adminHash, Role: sec.RoleAdmin},
	}, tokens, time.Hour)

	return service, tokens
}

func TestService_Login(t *testing.T) {
	service, tokens := newService(t)
	ctx := context.Background()

	session, err := service.Login(ctx, " ANNA ", "s3cret-curator")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleCurator, session.Role)
	assert.Equal(t, "Bearer", session.TokenType)
	assert.Equal(t, 3600, session.ExpiresIn)

	claims, err := tokens.VerifyToken(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Anna", claims.Username)
	assert.Equal(t, string(sec.RoleCurator), claims.Role)
}

func TestService_LoginRejected(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"WrongPassword", "admin", "nope"},
		{"UnknownUser", "bob", "s3cret-admin"},
		{"InvalidRole", "ghost", "s3cret-admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(ctx, tt.username, tt.password)
			assert.True(t, apperr.HasCode(err, "UNAUTHORIZED"))
		})
	}
}

func TestHandler_Login(t *testing.T) {
	service, _ := newService(t)
	router := chi.NewRouter()
	router.Route("/admin", auth.NewHandler(service).RegisterRoutes)

	post := func(body string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(body))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := post(`{"username":"admin","password":"s3cret-admin"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data auth.Session `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.AccessToken)
	assert.Equal(t, sec.RoleAdmin, body.Data.Role)

	assert.Equal(t, http.StatusUnauthorized, post(`{"username":"admin","password":"wrong"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`{"username":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(`not json`).Code)
}
