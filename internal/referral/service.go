// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package referral implements the pairwise referral code mechanic: a
// code belongs to one owner and is claimable by exactly one other user.
// It coexists with the room mechanic and shares its code primitive.
package referral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/Joakimpedev/protocol-sub000/internal/invitecode"
	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

var (
	// ErrInvalidCode means the code does not resolve to a referral code.
	ErrInvalidCode = errors.New("referral: invalid code")

	// ErrCodeAlreadyClaimed means another user already claimed the code.
	ErrCodeAlreadyClaimed = errors.New("referral: code already claimed")

	// ErrCannotUseOwnCode means the user tried to redeem their own code.
	ErrCannotUseOwnCode = errors.New("referral: cannot use own code")

	// ErrAlreadyUsedReferralCode means the user already redeemed a code.
	// A user may redeem at most one code ever.
	ErrAlreadyUsedReferralCode = errors.New("referral: user already redeemed a code")
)

func NewService(store *firestore.Client) *Service {
	return &Service{store: store}
}

type Service struct {
	store *firestore.Client
}

// GenerateCode returns the user's referral code, creating it on first
// request.
func (s *Service) GenerateCode(ctx context.Context, uid string) (*protocoldb.ReferralCode, error) {
	if existing, err := s.OwnedCode(ctx, uid); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	var created protocoldb.ReferralCode
	err := s.store.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		// Re-check ownership under the transaction: a concurrent call
		// for the same user may have committed after the check above.
		doc, err := t.Documents(s.store.Collection("referralCodes").
			Where("ownerId", "==", uid).
			Limit(1)).Next()
		switch {
		case errors.Is(err, iterator.Done):
		case err != nil:
			return fmt.Errorf("referral: querying owned code: %w", err)
		default:
			if err := doc.DataTo(&created); err != nil {
				return fmt.Errorf("referral: decoding code: %w", err)
			}
			return nil
		}

		code, existing, err := chooseCode(uid, func(code string) (*protocoldb.ReferralCode, error) {
			snap, err := t.Get(s.store.Collection("referralCodes").Doc(code))
			if err != nil && (snap == nil || snap.Exists()) {
				return nil, fmt.Errorf("referral: reading code doc: %w", err)
			}
			if snap == nil || !snap.Exists() {
				return nil, nil
			}
			var rc protocoldb.ReferralCode
			if err := snap.DataTo(&rc); err != nil {
				return nil, fmt.Errorf("referral: decoding code: %w", err)
			}
			return &rc, nil
		})
		if err != nil {
			return err
		}
		if existing != nil {
			created = *existing
			return nil
		}

		created = protocoldb.ReferralCode{
			Code:      code,
			OwnerID:   uid,
			CreatedAt: time.Now(),
		}
		if err := t.Set(s.store.Collection("referralCodes").Doc(code), created); err != nil {
			return fmt.Errorf("referral: creating code doc: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// chooseCode picks the document code for a new referral code owned by
// uid. get returns the code stored at a candidate, or nil when it is
// free. A doc at the derived code already owned by uid is a concurrent
// generation for the same user and is returned as the existing code;
// another owner's doc forces one re-derivation from a random id.
func chooseCode(uid string, get func(code string) (*protocoldb.ReferralCode, error)) (string, *protocoldb.ReferralCode, error) {
	code := invitecode.FromUserID(uid)
	for attempt := 0; ; attempt++ {
		rc, err := get(code)
		if err != nil {
			return "", nil, err
		}
		if rc == nil {
			return code, nil, nil
		}
		if rc.OwnerID == uid {
			return "", rc, nil
		}
		if attempt > 0 {
			return "", nil, fmt.Errorf("referral: code collision for %s", code) //nolint:err113
		}
		code = invitecode.FromUserID(uuid.NewString())
	}
}

// Redeem claims the code for the user. The claim is a compare-and-set
// inside a transaction: claimedBy transitions from empty to uid exactly
// once, and the user's lifetime redemption flag is set in the same
// commit.
func (s *Service) Redeem(ctx context.Context, code string, uid string) error {
	return s.store.RunTransaction(ctx, func(_ context.Context, t *firestore.Transaction) error {
		codeDoc := s.store.Collection("referralCodes").Doc(code)
		snap, err := t.Get(codeDoc)
		if err != nil && (snap == nil || snap.Exists()) {
			return fmt.Errorf("referral: reading code doc: %w", err)
		}
		if snap == nil || !snap.Exists() {
			return ErrInvalidCode
		}
		var rc protocoldb.ReferralCode
		if err := snap.DataTo(&rc); err != nil {
			return fmt.Errorf("referral: decoding code: %w", err)
		}

		userDoc := s.store.Collection("users").Doc(uid)
		var user protocoldb.UserProfile
		if userSnap, err := t.Get(userDoc); err == nil {
			if err := userSnap.DataTo(&user); err != nil {
				return fmt.Errorf("referral: decoding user: %w", err)
			}
		} else if userSnap == nil || userSnap.Exists() {
			return fmt.Errorf("referral: reading user doc: %w", err)
		}

		if err := claim(&rc, &user, uid); err != nil {
			return err
		}

		if err := t.Set(codeDoc, rc); err != nil {
			return fmt.Errorf("referral: saving claimed code: %w", err)
		}
		if err := t.Set(userDoc, map[string]any{
			"hasUsedReferralCode": true,
			"referredBy":          rc.OwnerID,
		}, firestore.MergeAll); err != nil {
			return fmt.Errorf("referral: saving user referral state: %w", err)
		}
		return nil
	})
}

// claim applies the one-time redemption transition.
func claim(rc *protocoldb.ReferralCode, user *protocoldb.UserProfile, uid string) error {
	if rc.OwnerID == uid {
		return ErrCannotUseOwnCode
	}
	if rc.ClaimedBy != "" {
		return ErrCodeAlreadyClaimed
	}
	if user.HasUsedReferralCode {
		return ErrAlreadyUsedReferralCode
	}
	rc.ClaimedBy = uid
	return nil
}

// RedeemPending redeems a code carried along in onboarding answers. It
// is a no-op once the user's lifetime redemption flag is set, so the
// code riding in every subsequent save does not retry a guaranteed
// failure.
func (s *Service) RedeemPending(ctx context.Context, code string, uid string) error {
	var user protocoldb.UserProfile
	if snap, err := s.store.Collection("users").Doc(uid).Get(ctx); err == nil {
		if err := snap.DataTo(&user); err != nil {
			return fmt.Errorf("referral: decoding user: %w", err)
		}
	} else if snap == nil || snap.Exists() {
		return fmt.Errorf("referral: reading user doc: %w", err)
	}

	if !shouldRedeem(code, &user) {
		return nil
	}
	return s.Redeem(ctx, code, uid)
}

// shouldRedeem is whether attempting a pending code can still succeed
// for the user.
func shouldRedeem(code string, user *protocoldb.UserProfile) bool {
	return code != "" && !user.HasUsedReferralCode
}

// OwnedCode returns the code the user owns, or nil if they have not
// generated one.
func (s *Service) OwnedCode(ctx context.Context, uid string) (*protocoldb.ReferralCode, error) {
	doc, err := s.store.Collection("referralCodes").
		Where("ownerId", "==", uid).
		Limit(1).
		Documents(ctx).Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, nil
		}
		return nil, fmt.Errorf("referral: querying owned code: %w", err)
	}

	var rc protocoldb.ReferralCode
	if err := doc.DataTo(&rc); err != nil {
		return nil, fmt.Errorf("referral: decoding code: %w", err)
	}
	return &rc, nil
}
