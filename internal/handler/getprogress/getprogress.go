// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package getprogress

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

// GetProgress decides where the onboarding flow resumes for the user.
func (h *Handler) GetProgress(ctx context.Context, req *api.GetProgressRequest) (*api.GetProgressResponse, error) {
	resumption, err := h.store.Resume(ctx, firebaseauth.TokenFromContext(ctx).UID, req.ForceRestart)
	if err != nil {
		return nil, err
	}
	return &api.GetProgressResponse{
		Screen:      string(resumption.Screen),
		ScreenIndex: resumption.ScreenIndex,
		Answers:     resumption.Answers,
	}, nil
}
