// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func TestProgressRoundTrip(t *testing.T) {
	answers := protocoldb.OnboardingAnswers{
		Gender:     "male",
		Concerns:   []string{"acne", "jawline"},
		SelfRating: 6,
		ShoppingChoices: map[string]string{
			"cleanser": "owned:CeraVe Foaming Cleanser",
		},
		ExerciseChoices: map[string]string{
			"jaw_curls": "skipped",
		},
	}

	t.Run("current screen", func(t *testing.T) {
		got := loaded(record(ScreenShopping, 9, answers))
		assert.Equal(t, string(ScreenShopping), got.CurrentScreen)
		assert.Equal(t, 9, got.ScreenIndex)
		assert.Equal(t, answers, got.Answers)
		assert.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("retired screen migrates on load", func(t *testing.T) {
		// Progress saved by an old app version lands on the renamed
		// screen with everything else intact.
		got := loaded(record("photo_capture", 4, answers))
		assert.Equal(t, string(ScreenPhotos), got.CurrentScreen)
		assert.Equal(t, 4, got.ScreenIndex)
		assert.Equal(t, answers, got.Answers)
	})
}
