// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package redeemcode

import (
	"context"
	"errors"

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

func (h *Handler) RedeemCode(ctx context.Context, req *api.RedeemCodeRequest) (*api.RedeemCodeResponse, error) {
	err := h.referrals.Redeem(ctx, req.Code, firebaseauth.TokenFromContext(ctx).UID)
	if err != nil {
		if reason, ok := redeemError(err); ok {
			return &api.RedeemCodeResponse{Error: reason}, nil
		}
		return nil, err
	}
	return &api.RedeemCodeResponse{Success: true}, nil
}

// redeemError maps redemption failures the client renders inline to
// their wire names.
func redeemError(err error) (string, bool) {
	switch {
	case errors.Is(err, referral.ErrInvalidCode):
		return "InvalidCode", true
	case errors.Is(err, referral.ErrCodeAlreadyClaimed):
		return "CodeAlreadyClaimed", true
	case errors.Is(err, referral.ErrCannotUseOwnCode):
		return "CannotUseOwnCode", true
	case errors.Is(err, referral.ErrAlreadyUsedReferralCode):
		return "AlreadyUsedReferralCode", true
	}
	return "", false
}
