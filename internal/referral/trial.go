// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

// Eligibility is the referral-derived trial state of a user.
type Eligibility string

const (
	// EligibilityUnlocked means the user has earned a free trial: their
	// code was claimed and the friend started a trial, or the user was
	// referred themselves.
	EligibilityUnlocked Eligibility = "unlocked"

	// EligibilityPending means the user's code was claimed but the
	// friend has not started a trial yet.
	EligibilityPending Eligibility = "pending"

	// EligibilityNone means no referral applies to the user.
	EligibilityNone Eligibility = "none"
)

// MarkTrialStarted records that the user started a trial. If the user
// claimed someone's code, the owner's reward unblocks here; if the user
// was referred, their own trial unlocks immediately.
func (s *Service) MarkTrialStarted(ctx context.Context, uid string) error {
	return s.store.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		var claimedDoc *firestore.DocumentRef
		var claimed protocoldb.ReferralCode
		iter := t.Documents(s.store.Collection("referralCodes").
			Where("claimedBy", "==", uid).
			Limit(1))
		doc, err := iter.Next()
		switch {
		case errors.Is(err, iterator.Done):
		case err != nil:
			return fmt.Errorf("referral: querying claimed code: %w", err)
		default:
			if err := doc.DataTo(&claimed); err != nil {
				return fmt.Errorf("referral: decoding claimed code: %w", err)
			}
			claimedDoc = doc.Ref
		}

		update := map[string]any{"trialStartedAt": time.Now()}
		if claimedDoc != nil {
			// The user was referred; their own trial unlocks on start.
			update["trialUnlocked"] = true
		}
		if err := t.Set(s.store.Collection("users").Doc(uid), update, firestore.MergeAll); err != nil {
			return fmt.Errorf("referral: saving trial start: %w", err)
		}

		if claimedDoc != nil && !claimed.FriendStartedTrial {
			claimed.FriendStartedTrial = true
			claimed.CreditApplied = true
			if err := t.Set(claimedDoc, claimed); err != nil {
				return fmt.Errorf("referral: saving friend trial start: %w", err)
			}
		}
		return nil
	})
}

// TrialEligibility derives the user's referral trial state from their
// owned code and their own referral record.
func (s *Service) TrialEligibility(ctx context.Context, uid string) (Eligibility, error) {
	owned, err := s.OwnedCode(ctx, uid)
	if err != nil {
		return EligibilityNone, err
	}

	var user protocoldb.UserProfile
	if snap, err := s.store.Collection("users").Doc(uid).Get(ctx); err == nil {
		if err := snap.DataTo(&user); err != nil {
			return EligibilityNone, fmt.Errorf("referral: decoding user: %w", err)
		}
	} else if snap == nil || snap.Exists() {
		return EligibilityNone, fmt.Errorf("referral: reading user doc: %w", err)
	}

	return eligibility(owned, &user), nil
}

func eligibility(owned *protocoldb.ReferralCode, user *protocoldb.UserProfile) Eligibility {
	if owned != nil && owned.ClaimedBy != "" {
		if owned.FriendStartedTrial {
			return EligibilityUnlocked
		}
		return EligibilityPending
	}
	if user.ReferredBy != "" {
		return EligibilityUnlocked
	}
	return EligibilityNone
}
