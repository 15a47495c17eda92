// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package progress persists a user's position in the onboarding flow so
// an interrupted flow resumes where it left off.
package progress

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func NewStore(store *firestore.Client) *Store {
	return &Store{store: store}
}

type Store struct {
	store *firestore.Client
}

func (s *Store) doc(uid string) *firestore.DocumentRef {
	return s.store.Collection("users").Doc(uid).Collection("state").Doc("onboarding")
}

// record builds the stored progress document for a position and its
// cumulative answers.
func record(screen Screen, screenIndex int, answers protocoldb.OnboardingAnswers) protocoldb.OnboardingProgress {
	return protocoldb.OnboardingProgress{
		CurrentScreen: string(screen),
		ScreenIndex:   screenIndex,
		Answers:       answers,
		UpdatedAt:     time.Now(),
	}
}

// loaded rewrites any retired screen ID on a decoded document.
func loaded(prog protocoldb.OnboardingProgress) *protocoldb.OnboardingProgress {
	prog.CurrentScreen = string(Migrate(Screen(prog.CurrentScreen)))
	return &prog
}

// Save overwrites the user's saved progress with the given position and
// cumulative answers. There is a single current value, not a history.
func (s *Store) Save(ctx context.Context, uid string, screen Screen, screenIndex int, answers protocoldb.OnboardingAnswers) error {
	if _, err := s.doc(uid).Set(ctx, record(screen, screenIndex, answers)); err != nil {
		return fmt.Errorf("progress: saving progress: %w", err)
	}
	return nil
}

// Load returns the last saved progress with any retired screen ID
// rewritten, or nil if nothing is saved.
func (s *Store) Load(ctx context.Context, uid string) (*protocoldb.OnboardingProgress, error) {
	snap, err := s.doc(uid).Get(ctx)
	if err != nil && (snap == nil || snap.Exists()) {
		return nil, fmt.Errorf("progress: reading progress: %w", err)
	}
	if snap == nil || !snap.Exists() {
		return nil, nil
	}

	var prog protocoldb.OnboardingProgress
	if err := snap.DataTo(&prog); err != nil {
		return nil, fmt.Errorf("progress: decoding progress: %w", err)
	}
	return loaded(prog), nil
}

// Clear removes the saved progress. Called when the flow completes.
func (s *Store) Clear(ctx context.Context, uid string) error {
	if _, err := s.doc(uid).Delete(ctx); err != nil {
		return fmt.Errorf("progress: clearing progress: %w", err)
	}
	return nil
}

// Resumption is where the flow should pick up for a user.
type Resumption struct {
	// Screen is the screen to land on.
	Screen Screen

	// ScreenIndex is the index of the screen in the flow.
	ScreenIndex int

	// Answers are the previously accumulated answers, if any.
	Answers *protocoldb.OnboardingAnswers
}

// Resume decides where the flow starts for the user. A user whose
// profile already has concerns but no started routine skips straight to
// the paywall; otherwise saved progress wins, falling back to the first
// screen. forceRestart skips the paywall shortcut.
func (s *Store) Resume(ctx context.Context, uid string, forceRestart bool) (Resumption, error) {
	if !forceRestart {
		var user protocoldb.UserProfile
		snap, err := s.store.Collection("users").Doc(uid).Get(ctx)
		if err != nil && (snap == nil || snap.Exists()) {
			return Resumption{}, fmt.Errorf("progress: reading user doc: %w", err)
		}
		if snap != nil && snap.Exists() {
			if err := snap.DataTo(&user); err != nil {
				return Resumption{}, fmt.Errorf("progress: decoding user: %w", err)
			}
			if len(user.Concerns) > 0 && user.RoutineStartedAt.IsZero() {
				return Resumption{Screen: ScreenPaywall}, nil
			}
		}
	}

	saved, err := s.Load(ctx, uid)
	if err != nil {
		return Resumption{}, err
	}
	if saved != nil {
		return Resumption{
			Screen:      Screen(saved.CurrentScreen),
			ScreenIndex: saved.ScreenIndex,
			Answers:     &saved.Answers,
		}, nil
	}
	return Resumption{Screen: ScreenWelcome}, nil
}
