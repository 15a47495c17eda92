// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package fillroom is a dev-only helper that fills the caller's room
// with synthesized members. Production configs never register it.
package fillroom

import (
	"context"
	"errors"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/auth"
	"github.com/Joakimpedev/protocol-sub000/internal/httpapi"
	"github.com/Joakimpedev/protocol-sub000/internal/room"
)

var errNotDevUser = errors.New("fillroom: not a dev user")

func NewHandler(rooms *room.Service) *Handler {
	return &Handler{rooms: rooms}
}

type Handler struct {
	rooms *room.Service
}

func (h *Handler) FillRoom(ctx context.Context, req *api.FillRoomRequest) (*api.FillRoomResponse, error) {
	if !auth.IsDevUser(ctx) {
		return nil, httpapi.NewError(http.StatusForbidden, errNotDevUser)
	}

	rm, err := h.rooms.DevFillRoom(ctx, firebaseauth.TokenFromContext(ctx).UID, req.DisplayName)
	if err != nil {
		return nil, err
	}
	return &api.FillRoomResponse{Room: api.RoomFromDB(rm)}, nil
}
