// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package uploadphotos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/facescore"
	"github.com/Joakimpedev/protocol-sub000/internal/httpapi"
	"github.com/Joakimpedev/protocol-sub000/internal/util"
)

func NewHandler(photos *facescore.PhotoStore) *Handler {
	return &Handler{photos: photos}
}

type Handler struct {
	photos *facescore.PhotoStore
}

// UploadPhotos replaces the user's persisted photo set.
func (h *Handler) UploadPhotos(ctx context.Context, req *api.UploadPhotosRequest) (*api.UploadPhotosResponse, error) {
	front, err := util.ImageURLToBytes(req.FrontBase64)
	if err != nil {
		return nil, httpapi.NewError(http.StatusBadRequest, fmt.Errorf("uploadphotos: decoding front photo: %w", err))
	}
	side, err := util.ImageURLToBytes(req.SideBase64)
	if err != nil {
		return nil, httpapi.NewError(http.StatusBadRequest, fmt.Errorf("uploadphotos: decoding side photo: %w", err))
	}

	set, err := h.photos.Save(ctx, firebaseauth.TokenFromContext(ctx).UID, front, side)
	if err != nil {
		if errors.Is(err, facescore.ErrFrontPhotoRequired) {
			return nil, httpapi.NewError(http.StatusBadRequest, err)
		}
		return nil, err
	}
	return &api.UploadPhotosResponse{
		FrontURL: set.FrontURL,
		SideURL:  set.SideURL,
	}, nil
}
