// Copyright (c) 2026 Inner Garden. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/innergarden/gallery/internal/platform/apperr"
	"github.com/innergarden/gallery/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"NoRows", pgx.ErrNoRows, http.StatusNotFound},
		{"WrappedNoRows", fmt.Errorf("scan: %w", pgx.ErrNoRows), http.StatusNotFound},
		{"Unique", &pgconn.PgError{Code: "23505", ConstraintName: "artwork_slug_key"}, http.StatusConflict},
		{"Check", &pgconn.PgError{Code: "23514", ConstraintName: "artwork_category_check"}, http.StatusBadRequest},
		{"NotNull", &pgconn.PgError{Code: "23502", ColumnName: "category"}, http.StatusBadRequest},
		{"Other", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "artwork_create")
			appErr := apperr.As(wrapped)
			if assert.NotNil(t, appErr) {
				assert.Equal(t, tt.status, appErr.HTTPStatus)
			}
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
}
