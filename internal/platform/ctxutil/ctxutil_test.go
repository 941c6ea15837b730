// Copyright (c) 2026 Inner Garden. All rights reserved.

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Language verifies the negotiated language round-trips and defaults to uk.
*/
func TestContext_Language(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, i18n.Ukrainian, ctxutil.GetLanguage(ctx))

	ctx = ctxutil.WithLanguage(ctx, i18n.German)
	assert.Equal(t, i18n.German, ctxutil.GetLanguage(ctx))

	ctx = ctxutil.WithLanguage(ctx, i18n.Language("fr"))
	assert.Equal(t, i18n.Ukrainian, ctxutil.GetLanguage(ctx))
}

func TestContext_VisitorID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetVisitorID(ctx))

	ctx = ctxutil.WithVisitorID(ctx, "v-123")
	assert.Equal(t, "v-123", ctxutil.GetVisitorID(ctx))
}

/*
TestContext_AuthUser verifies that AuthClaims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		UserID: "admin",
		Role:   string(sec.RoleAdmin),
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "admin", retrieved.UserID)
	assert.Equal(t, "admin", retrieved.Role)
}
