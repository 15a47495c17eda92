// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package referralstatus

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

func (h *Handler) ReferralStatus(ctx context.Context, _ *api.ReferralStatusRequest) (*api.ReferralStatusResponse, error) {
	uid := firebaseauth.TokenFromContext(ctx).UID

	owned, err := h.referrals.OwnedCode(ctx, uid)
	if err != nil {
		return nil, err
	}
	eligibility, err := h.referrals.TrialEligibility(ctx, uid)
	if err != nil {
		return nil, err
	}

	res := &api.ReferralStatusResponse{Eligibility: string(eligibility)}
	if owned != nil {
		res.Code = owned.Code
	}
	return res, nil
}
