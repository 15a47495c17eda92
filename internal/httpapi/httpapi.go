// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package httpapi binds unary ctx/req/res handler methods to the mux as
// JSON-over-POST endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error carries an HTTP status for a handler failure. Handler errors
// without one render as 500.
type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %v", e.Status, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with an HTTP status.
func NewError(status int, err error) *Error {
	return &Error{Status: status, Err: err}
}

// Handle registers fn on the mux at path, decoding the request body and
// encoding the response as JSON.
func Handle[Req any, Res any](mux chi.Router, path string, fn func(ctx context.Context, req *Req) (*Res, error)) {
	mux.Post(path, func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req Req
		if r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
		}

		res, err := fn(ctx, &req)
		if err != nil {
			status := http.StatusInternalServerError
			var httpErr *Error
			if errors.As(err, &httpErr) {
				status = httpErr.Status
			}
			slog.ErrorContext(ctx, "httpapi: handler failed", "path", path, "error", err)
			http.Error(w, http.StatusText(status), status)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			slog.ErrorContext(ctx, "httpapi: encoding response", "path", path, "error", err)
		}
	})
}
