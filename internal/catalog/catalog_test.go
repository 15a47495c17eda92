// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoadsBundledCatalog(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	acne := c.FindProblem("acne")
	require.NotNil(t, acne)
	assert.Equal(t, 1, acne.Priority)
	assert.Contains(t, acne.Ingredients, "salicylic_acid")

	jawline := c.FindProblem("jawline")
	require.NotNil(t, jawline)
	assert.Equal(t, DefaultPriority, jawline.Priority)
	assert.Empty(t, jawline.Ingredients)
	assert.Equal(t, []string{"mewing_exercise", "jaw_curls", "chin_tucks"}, jawline.Exercises)
}

func TestFindMissesReturnNil(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Nil(t, c.FindProblem("beard_growth"))
	assert.Nil(t, c.FindIngredient("snake_oil"))
	assert.Nil(t, c.FindExercise("jumping_jacks"))
}

func TestFindIngredientPremiumFlag(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	minoxidil := c.FindIngredient("minoxidil")
	require.NotNil(t, minoxidil)
	assert.True(t, minoxidil.Session.Premium)

	cleanser := c.FindIngredient("cleanser")
	require.NotNil(t, cleanser)
	assert.False(t, cleanser.Session.Premium)
}

func TestExerciseDuration(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	t.Run("session duration wins", func(t *testing.T) {
		jawCurls := c.FindExercise("jaw_curls")
		require.NotNil(t, jawCurls)
		assert.Equal(t, 180, jawCurls.Duration())
	})

	t.Run("falls back to default duration", func(t *testing.T) {
		mewing := c.FindExercise("mewing_exercise")
		require.NotNil(t, mewing)
		assert.Equal(t, 600, mewing.Duration())
	})
}
