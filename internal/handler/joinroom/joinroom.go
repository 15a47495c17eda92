// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package joinroom

import (
	"context"
	"errors"

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

func (h *Handler) JoinRoom(ctx context.Context, req *api.JoinRoomRequest) (*api.JoinRoomResponse, error) {
	rm, err := h.rooms.JoinRoom(ctx, req.Code, firebaseauth.TokenFromContext(ctx).UID, req.DisplayName)
	if err != nil {
		if reason, ok := joinError(err); ok {
			return &api.JoinRoomResponse{Error: reason}, nil
		}
		return nil, err
	}
	return &api.JoinRoomResponse{Success: true, Room: api.RoomFromDB(rm)}, nil
}

// joinError maps join failures the client renders inline to their wire
// names.
func joinError(err error) (string, bool) {
	switch {
	case errors.Is(err, room.ErrInvalidCode):
		return "InvalidCode", true
	case errors.Is(err, room.ErrRoomFull):
		return "RoomFull", true
	case errors.Is(err, room.ErrAlreadyMember):
		return "AlreadyMember", true
	}
	return "", false
}
