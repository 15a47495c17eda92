// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package protocoldb

import "time"

// ReferralCode represents a pairwise referral code stored in Firestore,
// in the referralCodes collection keyed by the code. Unlike a Room, a
// referral code pairs one owner with at most one claimant.
type ReferralCode struct {
	// Code is the 6-character referral code.
	Code string `firestore:"code"`

	// OwnerID is the uid of the user who generated the code.
	OwnerID string `firestore:"ownerId"`

	// ClaimedBy is the uid of the user who redeemed the code. Empty
	// until claimed; set at most once.
	ClaimedBy string `firestore:"claimedBy"`

	// FriendStartedTrial is whether the claimant went on to start a
	// trial.
	FriendStartedTrial bool `firestore:"friendStartedTrial"`

	// CreditApplied is whether the owner's reward for the referral has
	// been applied.
	CreditApplied bool `firestore:"creditApplied"`

	// CreatedAt is when the code was generated.
	CreatedAt time.Time `firestore:"createdAt"`
}
