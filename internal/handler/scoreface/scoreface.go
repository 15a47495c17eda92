// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package scoreface

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/facescore"
	"github.com/Joakimpedev/protocol-sub000/internal/httpapi"
	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

var errNoPhotos = errors.New("scoreface: no photos uploaded")

func NewHandler(photos *facescore.PhotoStore, scorer *facescore.Client, store *firestore.Client) *Handler {
	return &Handler{
		photos: photos,
		scorer: scorer,
		store:  store,
	}
}

type Handler struct {
	photos *facescore.PhotoStore
	scorer *facescore.Client
	store  *firestore.Client
}

// ScoreFace runs the analysis on the user's persisted photo set and
// caches the result on their profile.
func (h *Handler) ScoreFace(ctx context.Context, req *api.ScoreFaceRequest) (*api.ScoreFaceResponse, error) {
	uid := firebaseauth.TokenFromContext(ctx).UID

	set, err := h.photos.Load(ctx, uid)
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, httpapi.NewError(http.StatusBadRequest, errNoPhotos)
	}

	gender := req.Gender
	if gender == "" {
		gender = h.profileGender(ctx, uid)
	}

	analysis, err := h.scorer.ScoreFace(ctx, set, gender)
	if err != nil {
		var apiErr *facescore.APIError
		if errors.As(err, &apiErr) {
			return nil, httpapi.NewError(http.StatusBadGateway, err)
		}
		return nil, err
	}

	// The cache is a nicety for the results screen; scoring stands on
	// its own if the write fails.
	if _, _, err := h.store.Collection("users").Doc(uid).Collection("analyses").Add(ctx, analysis); err != nil {
		slog.WarnContext(ctx, "scoreface: caching analysis", "error", err)
	}

	return &api.ScoreFaceResponse{Analysis: analysis}, nil
}

func (h *Handler) profileGender(ctx context.Context, uid string) string {
	snap, err := h.store.Collection("users").Doc(uid).Get(ctx)
	if err != nil || !snap.Exists() {
		return "unspecified"
	}
	var user protocoldb.UserProfile
	if err := snap.DataTo(&user); err != nil || user.Gender == "" {
		return "unspecified"
	}
	return user.Gender
}
