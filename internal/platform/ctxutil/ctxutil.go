// Copyright (c) 2026 Inner Garden. All rights reserved.

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/innergarden/gallery/internal/platform/ctxkey"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Localisation

// WithLanguage returns a new context carrying the negotiated language.
func WithLanguage(ctx context.Context, lang i18n.Language) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLanguage, lang)
}

// GetLanguage retrieves the negotiated language, or [i18n.Default].
func GetLanguage(ctx context.Context) i18n.Language {
	lang, ok := ctx.Value(ctxkey.KeyLanguage).(i18n.Language)
	if !ok || !lang.IsValid() {
		return i18n.Default
	}
	return lang
}

// WithVisitorID returns a new context carrying the anonymous visitor identifier.
func WithVisitorID(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyVisitor, visitorID)
}

// GetVisitorID retrieves the visitor identifier, or an empty string.
func GetVisitorID(ctx context.Context) string {
	visitorID, _ := ctx.Value(ctxkey.KeyVisitor).(string)
	return visitorID
}

// # Identity & Access

// WithAuthUser returns a new context with the provided auth claims attached.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
