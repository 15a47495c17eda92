// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package room

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joakimpedev/protocol-sub000/internal/invitecode"
	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func roomWithMembers(n int) *protocoldb.Room {
	rm := &protocoldb.Room{Code: "ABC123", OwnerID: "user-0"}
	for i := range n {
		uid := fmt.Sprintf("user-%d", i)
		rm.Members = append(rm.Members, protocoldb.RoomMember{UserID: uid, Name: uid})
		rm.MemberUIDs = append(rm.MemberUIDs, uid)
		rm.MemberCount++
	}
	return rm
}

func TestChooseCode(t *testing.T) {
	const uid = "user123456"

	t.Run("derived code free", func(t *testing.T) {
		code, existing, err := chooseCode(uid, func(string) (*protocoldb.Room, error) {
			return nil, nil
		})
		require.NoError(t, err)
		assert.Nil(t, existing)
		assert.Equal(t, "123456", code)
	})

	t.Run("own room already at derived code", func(t *testing.T) {
		// Two concurrent creates for the same user derive the same code;
		// the loser must get the winner's room back, not a second room.
		own := &protocoldb.Room{Code: "123456", OwnerID: uid, MemberUIDs: []string{uid}}
		code, existing, err := chooseCode(uid, func(c string) (*protocoldb.Room, error) {
			if c == "123456" {
				return own, nil
			}
			return nil, nil
		})
		require.NoError(t, err)
		assert.Empty(t, code)
		assert.Same(t, own, existing)
	})

	t.Run("another owner forces re-derivation", func(t *testing.T) {
		var gets []string
		code, existing, err := chooseCode(uid, func(c string) (*protocoldb.Room, error) {
			gets = append(gets, c)
			if c == "123456" {
				return &protocoldb.Room{Code: c, OwnerID: "someone-else"}, nil
			}
			return nil, nil
		})
		require.NoError(t, err)
		assert.Nil(t, existing)
		assert.Len(t, code, invitecode.Length)
		assert.Equal(t, []string{"123456", code}, gets)
	})

	t.Run("repeated collisions error", func(t *testing.T) {
		_, _, err := chooseCode(uid, func(c string) (*protocoldb.Room, error) {
			return &protocoldb.Room{Code: c, OwnerID: "someone-else"}, nil
		})
		assert.Error(t, err)
	})
}

func TestJoinAddsMember(t *testing.T) {
	rm := roomWithMembers(1)

	err := join(rm, protocoldb.RoomMember{UserID: "user-1", Name: "Sam"})
	require.NoError(t, err)
	assert.Equal(t, 2, rm.MemberCount)
	assert.Equal(t, []string{"user-0", "user-1"}, rm.MemberUIDs)
	assert.False(t, rm.IsUnlocked)
}

func TestJoinUnlocksAtCapacity(t *testing.T) {
	rm := roomWithMembers(protocoldb.RoomCapacity - 1)

	err := join(rm, protocoldb.RoomMember{UserID: "user-last"})
	require.NoError(t, err)
	assert.Equal(t, protocoldb.RoomCapacity, rm.MemberCount)
	assert.True(t, rm.IsUnlocked)
}

func TestJoinFullRoom(t *testing.T) {
	rm := roomWithMembers(protocoldb.RoomCapacity)

	err := join(rm, protocoldb.RoomMember{UserID: "user-late"})
	assert.ErrorIs(t, err, ErrRoomFull)
	assert.Equal(t, protocoldb.RoomCapacity, rm.MemberCount)
}

func TestJoinExistingMember(t *testing.T) {
	rm := roomWithMembers(2)

	err := join(rm, protocoldb.RoomMember{UserID: "user-1"})
	assert.ErrorIs(t, err, ErrAlreadyMember)
	assert.Equal(t, 2, rm.MemberCount)
}
