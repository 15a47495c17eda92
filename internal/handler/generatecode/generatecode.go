// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package generatecode

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

func (h *Handler) GenerateCode(ctx context.Context, _ *api.GenerateCodeRequest) (*api.GenerateCodeResponse, error) {
	code, err := h.referrals.GenerateCode(ctx, firebaseauth.TokenFromContext(ctx).UID)
	if err != nil {
		return nil, err
	}
	return &api.GenerateCodeResponse{Code: code.Code}, nil
}
