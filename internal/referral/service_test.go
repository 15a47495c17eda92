// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package referral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func TestClaim(t *testing.T) {
	t.Run("first claim succeeds", func(t *testing.T) {
		rc := &protocoldb.ReferralCode{Code: "ABC123", OwnerID: "owner"}
		user := &protocoldb.UserProfile{UserID: "friend"}

		require.NoError(t, claim(rc, user, "friend"))
		assert.Equal(t, "friend", rc.ClaimedBy)
	})

	t.Run("own code", func(t *testing.T) {
		rc := &protocoldb.ReferralCode{Code: "ABC123", OwnerID: "owner"}

		err := claim(rc, &protocoldb.UserProfile{UserID: "owner"}, "owner")
		assert.ErrorIs(t, err, ErrCannotUseOwnCode)
		assert.Empty(t, rc.ClaimedBy)
	})

	t.Run("already claimed", func(t *testing.T) {
		rc := &protocoldb.ReferralCode{Code: "ABC123", OwnerID: "owner", ClaimedBy: "first"}

		err := claim(rc, &protocoldb.UserProfile{UserID: "second"}, "second")
		assert.ErrorIs(t, err, ErrCodeAlreadyClaimed)
		assert.Equal(t, "first", rc.ClaimedBy)
	})

	t.Run("one redemption per lifetime", func(t *testing.T) {
		rc := &protocoldb.ReferralCode{Code: "ABC123", OwnerID: "owner"}
		user := &protocoldb.UserProfile{UserID: "friend", HasUsedReferralCode: true}

		err := claim(rc, user, "friend")
		assert.ErrorIs(t, err, ErrAlreadyUsedReferralCode)
		assert.Empty(t, rc.ClaimedBy)
	})

	t.Run("own code wins over already claimed", func(t *testing.T) {
		rc := &protocoldb.ReferralCode{Code: "ABC123", OwnerID: "owner", ClaimedBy: "friend"}

		err := claim(rc, &protocoldb.UserProfile{UserID: "owner"}, "owner")
		assert.ErrorIs(t, err, ErrCannotUseOwnCode)
	})
}

func TestChooseCode(t *testing.T) {
	const uid = "user123456"

	t.Run("own code already at derived code", func(t *testing.T) {
		// Two concurrent generations for the same user derive the same
		// code; the loser must get the winner's code back, not a second
		// one.
		own := &protocoldb.ReferralCode{Code: "123456", OwnerID: uid}
		code, existing, err := chooseCode(uid, func(c string) (*protocoldb.ReferralCode, error) {
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
		code, existing, err := chooseCode(uid, func(c string) (*protocoldb.ReferralCode, error) {
			if c == "123456" {
				return &protocoldb.ReferralCode{Code: c, OwnerID: "someone-else"}, nil
			}
			return nil, nil
		})
		require.NoError(t, err)
		assert.Nil(t, existing)
		assert.Len(t, code, 6)
		assert.NotEqual(t, "", code)
	})
}

func TestShouldRedeem(t *testing.T) {
	assert.True(t, shouldRedeem("ABC123", &protocoldb.UserProfile{}))
	assert.False(t, shouldRedeem("", &protocoldb.UserProfile{}))
	assert.False(t, shouldRedeem("ABC123", &protocoldb.UserProfile{HasUsedReferralCode: true}))
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name  string
		owned *protocoldb.ReferralCode
		user  protocoldb.UserProfile
		want  Eligibility
	}{
		{
			name: "no referral activity",
			want: EligibilityNone,
		},
		{
			name:  "owned code unclaimed",
			owned: &protocoldb.ReferralCode{Code: "ABC123"},
			want:  EligibilityNone,
		},
		{
			name:  "owned code claimed, friend not started",
			owned: &protocoldb.ReferralCode{Code: "ABC123", ClaimedBy: "friend"},
			want:  EligibilityPending,
		},
		{
			name:  "owned code claimed, friend started",
			owned: &protocoldb.ReferralCode{Code: "ABC123", ClaimedBy: "friend", FriendStartedTrial: true},
			want:  EligibilityUnlocked,
		},
		{
			name: "user was referred",
			user: protocoldb.UserProfile{ReferredBy: "owner"},
			want: EligibilityUnlocked,
		},
		{
			name:  "claimed code takes precedence over being referred",
			owned: &protocoldb.ReferralCode{Code: "ABC123", ClaimedBy: "friend"},
			user:  protocoldb.UserProfile{ReferredBy: "owner"},
			want:  EligibilityPending,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, eligibility(tt.owned, &tt.user))
		})
	}
}
