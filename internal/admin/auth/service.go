// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package auth authenticates back-office operators.

Architecture:

  - Accounts: a static list resolved from configuration (admin, optional curator).
  - Security: bcrypt password hashes and RS256-signed JWT access tokens.
  - No sessions: tokens are short-lived and never refreshed; operators log in again.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/sec"
)

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username string, role sec.UserRole, timeToLive time.Duration) (string, error)
}

// Service implements operator login.
type Service struct {
	accounts      map[string]Account
	tokenProvider TokenProvider
	tokenTTL      time.Duration
}

// NewService builds a [Service]. Accounts with a blank username, hash or an
// unknown role are ignored; usernames compare case-insensitively.
func NewService(accounts []Account, tokenProvider TokenProvider, tokenTTL time.Duration) *Service {
	byName := make(map[string]Account, len(accounts))
	for _, account := range accounts {
		name := strings.ToLower(strings.TrimSpace(account.Username))
		if name == "" || account.PasswordHash == "" || !account.Role.IsValid() {
			continue
		}
		byName[name] = account
	}

	return &Service{
		accounts:      byName,
		tokenProvider: tokenProvider,
		tokenTTL:      tokenTTL,
	}
}

/*
Login validates operator credentials and issues an access token.

Description: Unknown usernames and wrong passwords fail with the same
message so accounts cannot be enumerated.

Parameters:
  - context: context.Context
  - username: string
  - password: string

Returns:
  - *Session: signed access token
  - error: apperr.Unauthorized or signing failures
*/
func (service *Service) Login(context context.Context, username, password string) (*Session, error) {
	logger := ctxutil.GetLogger(context)

	account, ok := service.accounts[strings.ToLower(strings.TrimSpace(username))]
	if !ok || !sec.CheckPasswordHash(password, account.PasswordHash) {
		logger.WarnContext(context, "admin_login_rejected", slog.String("username", username))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	token, err := service.tokenProvider.GenerateAccessToken(account.Username, account.Username, account.Role, service.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("admin_auth_token_generation_failed: %w", err)
	}

	logger.InfoContext(context, "admin_login_succeeded",
		slog.String("username", account.Username),
		slog.String("role", string(account.Role)),
	)

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(service.tokenTTL.Seconds()),
		Username:    account.Username,
		Role:        account.Role,
	}, nil
}
