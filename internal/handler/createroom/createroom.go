// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package createroom

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

func (h *Handler) CreateRoom(ctx context.Context, req *api.CreateRoomRequest) (*api.CreateRoomResponse, error) {
	rm, err := h.rooms.CreateRoom(ctx, firebaseauth.TokenFromContext(ctx).UID, req.DisplayName)
	if err != nil {
		return nil, err
	}
	return &api.CreateRoomResponse{Room: api.RoomFromDB(rm)}, nil
}
