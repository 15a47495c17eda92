// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package getphotos

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/facescore"
)

func NewHandler(photos *facescore.PhotoStore) *Handler {
	return &Handler{photos: photos}
}

type Handler struct {
	photos *facescore.PhotoStore
}

// GetPhotos returns the URLs of the user's current photo set, empty
// when none is persisted.
func (h *Handler) GetPhotos(ctx context.Context, _ *api.GetPhotosRequest) (*api.GetPhotosResponse, error) {
	set, err := h.photos.Load(ctx, firebaseauth.TokenFromContext(ctx).UID)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return &api.GetPhotosResponse{}, nil
	}
	return &api.GetPhotosResponse{
		FrontURL: set.FrontURL,
		SideURL:  set.SideURL,
	}, nil
}
