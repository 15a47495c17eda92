// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package protocoldb

import "time"

// IngredientState is the lifecycle state of an ingredient selection.
type IngredientState string

const (
	// IngredientStatePending means the user has not yet bought a product
	// for the ingredient.
	IngredientStatePending IngredientState = "pending"

	// IngredientStateActive means the user owns a product for the
	// ingredient and it is part of their routine.
	IngredientStateActive IngredientState = "active"

	// IngredientStateSkipped means the user chose to skip the ingredient.
	IngredientStateSkipped IngredientState = "skipped"
)

// ExerciseState is the lifecycle state of an exercise selection.
type ExerciseState string

const (
	// ExerciseStateAdded means the exercise is part of the user's routine.
	ExerciseStateAdded ExerciseState = "added"

	// ExerciseStateSkipped means the user chose to skip the exercise.
	ExerciseStateSkipped ExerciseState = "skipped"
)

// IngredientSelection is a user's selection for a single routine ingredient.
// There is at most one selection per ingredient ID per user.
type IngredientSelection struct {
	// IngredientID is the catalog ID of the ingredient.
	IngredientID string `firestore:"ingredientId"`

	// ProductName is the name of the product the user bought, if any.
	ProductName string `firestore:"productName"`

	// State is the current state of the selection.
	State IngredientState `firestore:"state"`

	// WaitingForDelivery is whether the user ordered a product that has
	// not arrived yet.
	WaitingForDelivery bool `firestore:"waitingForDelivery"`
}

// ExerciseSelection is a user's selection for a single routine exercise.
// There is at most one selection per exercise ID per user.
type ExerciseSelection struct {
	// ExerciseID is the catalog ID of the exercise.
	ExerciseID string `firestore:"exerciseId"`

	// State is the current state of the selection.
	State ExerciseState `firestore:"state"`
}

// UserProfile represents a user stored in Firestore, in the users
// collection keyed by the Firebase uid.
type UserProfile struct {
	// UserID is the Firebase uid of the user.
	UserID string `firestore:"userId"`

	// DisplayName is the user's display name.
	DisplayName string `firestore:"displayName"`

	// Gender is the gender the user selected during onboarding.
	Gender string `firestore:"gender"`

	// Concerns are the concern IDs the user selected during onboarding.
	Concerns []string `firestore:"concerns"`

	// SelfRating is the 1-10 rating the user gave themselves.
	SelfRating int `firestore:"selfRating"`

	// RoomCode is the code of the referral room the user owns or joined,
	// if any.
	RoomCode string `firestore:"roomCode"`

	// HasUsedReferralCode is whether the user has ever redeemed a
	// referral code. A user may redeem at most one code.
	HasUsedReferralCode bool `firestore:"hasUsedReferralCode"`

	// ReferredBy is the uid of the user whose code this user redeemed.
	ReferredBy string `firestore:"referredBy"`

	// TrialStartedAt is when the user started their trial.
	TrialStartedAt time.Time `firestore:"trialStartedAt"`

	// TrialUnlocked is whether the user has unlocked a free trial through
	// a referral or a full room.
	TrialUnlocked bool `firestore:"trialUnlocked"`

	// RoutineStartedAt is when the user activated their routine.
	RoutineStartedAt time.Time `firestore:"routineStartedAt"`

	// IngredientSelections are the user's active routine ingredients.
	IngredientSelections []IngredientSelection `firestore:"ingredientSelections"`

	// ExerciseSelections are the user's active routine exercises.
	ExerciseSelections []ExerciseSelection `firestore:"exerciseSelections"`
}
