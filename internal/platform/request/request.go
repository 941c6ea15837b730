// Copyright (c) 2026 Inner Garden. All rights reserved.

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/ctxutil"
	"github.com/innergarden/gallery/internal/platform/i18n"
	"github.com/innergarden/gallery/internal/platform/sec"
	"github.com/innergarden/gallery/internal/platform/validate"
)

// maxBodyBytes bounds JSON request bodies; a full catalogue import fits easily.
const maxBodyBytes = 8 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(io.LimitReader(request.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// Trailing garbage after the first value is rejected too
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter holding a record identifier.
Blank identifiers are rejected with a 400.
*/
func ID(request *http.Request, name string) (string, error) {
	id := strings.TrimSpace(chi.URLParam(request, name))
	if id == "" {
		return "", apperr.BadRequest("Missing identifier")
	}
	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Language returns the content language negotiated by the middleware.
*/
func Language(request *http.Request) i18n.Language {
	return ctxutil.GetLanguage(request.Context())
}

/*
VisitorID returns the anonymous visitor identifier resolved by the middleware.

Returns:
  - string: the visitor identifier
  - error: apperr.BadRequest when no visitor could be identified
*/
func VisitorID(request *http.Request) (string, error) {
	visitorID := ctxutil.GetVisitorID(request.Context())
	if visitorID == "" {
		return "", apperr.BadRequest("Missing visitor identifier")
	}
	return visitorID, nil
}

/*
Claims extracts the authenticated admin claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the claims.

Returns:
  - *sec.AuthClaims: The authenticated admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
