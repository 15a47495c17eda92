// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package protocoldb

import "time"

// RoomCapacity is the number of members that unlocks a room.
const RoomCapacity = 4

// RoomMember is a member of a referral room.
type RoomMember struct {
	// UserID is the uid of the member.
	UserID string `firestore:"userId"`

	// Name is the display name of the member.
	Name string `firestore:"name"`
}

// Room represents a referral room stored in Firestore, in the rooms
// collection keyed by the room code.
type Room struct {
	// Code is the 6-character room code.
	Code string `firestore:"code"`

	// OwnerID is the uid of the user who created the room.
	OwnerID string `firestore:"ownerId"`

	// Members are the members of the room, including the owner.
	Members []RoomMember `firestore:"members"`

	// MemberUIDs mirrors Members for array-contains queries.
	MemberUIDs []string `firestore:"memberUids"`

	// MemberCount is the number of members in the room.
	MemberCount int `firestore:"memberCount"`

	// IsUnlocked is whether the room reached capacity and unlocked the
	// trial for its members.
	IsUnlocked bool `firestore:"isUnlocked"`

	// CreatedAt is when the room was created.
	CreatedAt time.Time `firestore:"createdAt"`
}
