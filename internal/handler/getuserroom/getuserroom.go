// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package getuserroom

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/room"
)

func NewHandler(rooms *room.Service) *Handler {
	return &Handler{rooms: rooms}
}

type Handler struct {
	rooms *room.Service
}

func (h *Handler) GetUserRoom(ctx context.Context, _ *api.GetUserRoomRequest) (*api.GetUserRoomResponse, error) {
	rm, err := h.rooms.GetUserRoom(ctx, firebaseauth.TokenFromContext(ctx).UID)
	if err != nil {
		return nil, err
	}
	return &api.GetUserRoomResponse{Room: api.RoomFromDB(rm)}, nil
}
