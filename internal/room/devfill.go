// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package room

import (
	"context"

	"github.com/google/uuid"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

var devMemberNames = []string{"Alex", "Sam", "Jordan"}

// DevFillRoom synthesizes fake members until the user's room is full,
// creating the room first if needed. Only reachable through the dev
// endpoints, which production configs do not register.
func (s *Service) DevFillRoom(ctx context.Context, uid string, displayName string) (*protocoldb.Room, error) {
	rm, err := s.CreateRoom(ctx, uid, displayName)
	if err != nil {
		return nil, err
	}

	for i := 0; rm.MemberCount < protocoldb.RoomCapacity; i++ {
		rm, err = s.JoinRoom(ctx, rm.Code, "dev-"+uuid.NewString(), devMemberNames[i%len(devMemberNames)])
		if err != nil {
			return nil, err
		}
	}
	return rm, nil
}
