// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package room implements the 4-person referral room mechanic. Filling a
// room unlocks a free trial for all of its members.
package room

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/Joakimpedev/protocol-sub000/internal/invitecode"
	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

var (
	// ErrInvalidCode means the code does not resolve to a room.
	ErrInvalidCode = errors.New("room: invalid code")

	// ErrRoomFull means the room already has the maximum number of
	// members.
	ErrRoomFull = errors.New("room: room is full")

	// ErrAlreadyMember means the user already belongs to a room. A user
	// belongs to at most one room.
	ErrAlreadyMember = errors.New("room: user already in a room")
)

func NewService(store *firestore.Client) *Service {
	return &Service{store: store}
}

type Service struct {
	store *firestore.Client
}

// GetUserRoom returns the room the user owns or joined, or nil if there
// is none.
func (s *Service) GetUserRoom(ctx context.Context, uid string) (*protocoldb.Room, error) {
	doc, err := s.store.Collection("rooms").
		Where("memberUids", "array-contains", uid).
		Limit(1).
		Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, nil
		}
		return nil, fmt.Errorf("room: querying user room: %w", err)
	}

	var rm protocoldb.Room
	if err := doc.DataTo(&rm); err != nil {
		return nil, fmt.Errorf("room: decoding room: %w", err)
	}
	return &rm, nil
}

// CreateRoom lazily creates a room owned by the user. Calling it again
// returns the existing room rather than creating a duplicate.
func (s *Service) CreateRoom(ctx context.Context, uid string, displayName string) (*protocoldb.Room, error) {
	if existing, err := s.GetUserRoom(ctx, uid); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	owner := protocoldb.RoomMember{UserID: uid, Name: displayName}
	var created protocoldb.Room
	err := s.store.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		// Re-check membership under the transaction: a concurrent call
		// for the same user may have committed after the check above.
		doc, err := t.Documents(s.store.Collection("rooms").
			Where("memberUids", "array-contains", uid).
			Limit(1)).Next()
		switch {
		case errors.Is(err, iterator.Done):
		case err != nil:
			return fmt.Errorf("room: querying user room: %w", err)
		default:
			if err := doc.DataTo(&created); err != nil {
				return fmt.Errorf("room: decoding room: %w", err)
			}
			return nil
		}

		code, existing, err := chooseCode(uid, func(code string) (*protocoldb.Room, error) {
			snap, err := t.Get(s.store.Collection("rooms").Doc(code))
			if err != nil && (snap == nil || snap.Exists()) {
				return nil, fmt.Errorf("room: reading room doc: %w", err)
			}
			if snap == nil || !snap.Exists() {
				return nil, nil
			}
			var rm protocoldb.Room
			if err := snap.DataTo(&rm); err != nil {
				return nil, fmt.Errorf("room: decoding room: %w", err)
			}
			return &rm, nil
		})
		if err != nil {
			return err
		}
		if existing != nil {
			created = *existing
			return nil
		}

		created = protocoldb.Room{
			Code:        code,
			OwnerID:     uid,
			Members:     []protocoldb.RoomMember{owner},
			MemberUIDs:  []string{uid},
			MemberCount: 1,
			CreatedAt:   time.Now(),
		}
		if err := t.Set(s.store.Collection("rooms").Doc(code), created); err != nil {
			return fmt.Errorf("room: creating room doc: %w", err)
		}
		if err := t.Set(s.store.Collection("users").Doc(uid), map[string]any{"roomCode": code}, firestore.MergeAll); err != nil {
			return fmt.Errorf("room: saving user room code: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// chooseCode picks the document code for a new room owned by uid. get
// returns the room stored at a code, or nil when the code is free. A
// doc at the derived code already owned by uid is a concurrent create
// for the same user and is returned as the existing room; another
// owner's doc forces one re-derivation from a random id.
func chooseCode(uid string, get func(code string) (*protocoldb.Room, error)) (string, *protocoldb.Room, error) {
	code := invitecode.FromUserID(uid)
	for attempt := 0; ; attempt++ {
		rm, err := get(code)
		if err != nil {
			return "", nil, err
		}
		if rm == nil {
			return code, nil, nil
		}
		if rm.OwnerID == uid {
			return "", rm, nil
		}
		if attempt > 0 {
			return "", nil, fmt.Errorf("room: code collision for %s", code) //nolint:err113
		}
		code = invitecode.FromUserID(uuid.NewString())
	}
}

// JoinRoom adds the user to the room with the given code. The membership
// update runs in a transaction so two users racing for the last slot
// cannot both succeed. Reaching capacity unlocks the room.
func (s *Service) JoinRoom(ctx context.Context, code string, uid string, displayName string) (*protocoldb.Room, error) {
	if existing, err := s.GetUserRoom(ctx, uid); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, ErrAlreadyMember
	}

	member := protocoldb.RoomMember{UserID: uid, Name: displayName}
	var joined protocoldb.Room
	err := s.store.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		roomDoc := s.store.Collection("rooms").Doc(code)
		snap, err := t.Get(roomDoc)
		if err != nil && (snap == nil || snap.Exists()) {
			return fmt.Errorf("room: reading room doc: %w", err)
		}
		if snap == nil || !snap.Exists() {
			return ErrInvalidCode
		}

		var rm protocoldb.Room
		if err := snap.DataTo(&rm); err != nil {
			return fmt.Errorf("room: decoding room: %w", err)
		}
		if err := join(&rm, member); err != nil {
			return err
		}

		if err := t.Set(roomDoc, rm); err != nil {
			return fmt.Errorf("room: saving room: %w", err)
		}
		if err := t.Set(s.store.Collection("users").Doc(uid), map[string]any{"roomCode": rm.Code}, firestore.MergeAll); err != nil {
			return fmt.Errorf("room: saving user room code: %w", err)
		}
		joined = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &joined, nil
}

// join applies the membership transition. The room unlocks exactly when
// the member count reaches capacity.
func join(rm *protocoldb.Room, member protocoldb.RoomMember) error {
	if slices.Contains(rm.MemberUIDs, member.UserID) {
		return ErrAlreadyMember
	}
	if rm.MemberCount >= protocoldb.RoomCapacity {
		return ErrRoomFull
	}
	rm.Members = append(rm.Members, member)
	rm.MemberUIDs = append(rm.MemberUIDs, member.UserID)
	rm.MemberCount++
	if rm.MemberCount == protocoldb.RoomCapacity {
		rm.IsUnlocked = true
	}
	return nil
}
