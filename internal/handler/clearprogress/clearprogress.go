// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package clearprogress

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/progress"
)

func NewHandler(store *progress.Store) *Handler {
	return &Handler{store: store}
}

type Handler struct {
	store *progress.Store
}

func (h *Handler) ClearProgress(ctx context.Context, _ *api.ClearProgressRequest) (*api.ClearProgressResponse, error) {
	if err := h.store.Clear(ctx, firebaseauth.TokenFromContext(ctx).UID); err != nil {
		return nil, err
	}
	return &api.ClearProgressResponse{}, nil
}
