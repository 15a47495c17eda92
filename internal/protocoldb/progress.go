// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package protocoldb

import "time"

// OnboardingAnswers are the cumulative answers collected across the
// onboarding flow.
type OnboardingAnswers struct {
	// Gender is the selected gender.
	Gender string `firestore:"gender" json:"gender"`

	// Concerns are the selected concern IDs.
	Concerns []string `firestore:"concerns" json:"concerns"`

	// SelfRating is the 1-10 self rating.
	SelfRating int `firestore:"selfRating" json:"selfRating"`

	// ShoppingChoices maps an ingredient ID to the user's shopping
	// choice for it: "owned:<product name>", "pending", or "skipped".
	ShoppingChoices map[string]string `firestore:"shoppingChoices" json:"shoppingChoices"`

	// ExerciseChoices maps an exercise ID to "added" or "skipped".
	ExerciseChoices map[string]string `firestore:"exerciseChoices" json:"exerciseChoices"`

	// PendingReferralCode is a referral code entered before the user
	// authenticated, redeemed once they have a uid.
	PendingReferralCode string `firestore:"pendingReferralCode" json:"pendingReferralCode"`
}

// OnboardingProgress is the saved position in the onboarding flow,
// stored as a single document per user and overwritten on every screen
// transition.
type OnboardingProgress struct {
	// CurrentScreen is the ID of the screen the user was last on.
	CurrentScreen string `firestore:"currentScreen"`

	// ScreenIndex is the index of the screen in the flow.
	ScreenIndex int `firestore:"screenIndex"`

	// Answers are the answers accumulated so far.
	Answers OnboardingAnswers `firestore:"answers"`

	// UpdatedAt is when the progress was last saved.
	UpdatedAt time.Time `firestore:"updatedAt"`
}
