// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package saveprogress

import (
	"context"
	"log/slog"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/progress"
	"github.com/Joakimpedev/protocol-sub000/internal/referral"
)

func NewHandler(store *progress.Store, referrals *referral.Service) *Handler {
	return &Handler{
		store:     store,
		referrals: referrals,
	}
}

type Handler struct {
	store     *progress.Store
	referrals *referral.Service
}

// SaveProgress persists the flow position best-effort. A failed save is
// logged but never blocks navigation. A referral code entered before the
// user authenticated rides along in the answers and is redeemed here.
func (h *Handler) SaveProgress(ctx context.Context, req *api.SaveProgressRequest) (*api.SaveProgressResponse, error) {
	uid := firebaseauth.TokenFromContext(ctx).UID
	if err := h.store.Save(ctx, uid, progress.Screen(req.Screen), req.ScreenIndex, req.Answers); err != nil {
		slog.WarnContext(ctx, "saveprogress: saving progress", "error", err)
	}

	if code := req.Answers.PendingReferralCode; code != "" {
		// Redemption failures (bad code, already used) surface on the
		// referral screen, not as a save failure.
		if err := h.referrals.RedeemPending(ctx, code, uid); err != nil {
			slog.WarnContext(ctx, "saveprogress: redeeming pending referral code", "error", err)
		}
	}
	return &api.SaveProgressResponse{}, nil
}
