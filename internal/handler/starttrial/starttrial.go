// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package starttrial

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/referral"
)

func NewHandler(referrals *referral.Service) *Handler {
	return &Handler{referrals: referrals}
}

type Handler struct {
	referrals *referral.Service
}

// StartTrial records the trial start and unblocks any referral rewards
// hanging on it.
func (h *Handler) StartTrial(ctx context.Context, _ *api.StartTrialRequest) (*api.StartTrialResponse, error) {
	if err := h.referrals.MarkTrialStarted(ctx, firebaseauth.TokenFromContext(ctx).UID); err != nil {
		return nil, err
	}
	return &api.StartTrialResponse{}, nil
}
