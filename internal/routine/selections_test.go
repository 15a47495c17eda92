// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package routine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func TestBuildSelectionsMapsShoppingChoices(t *testing.T) {
	a := newAssembler(t)

	sel := a.BuildSelections(&protocoldb.OnboardingAnswers{
		Concerns: []string{"acne"},
		ShoppingChoices: map[string]string{
			"cleanser":       "owned:CeraVe Foaming Cleanser",
			"salicylic_acid": "skipped",
			"niacinamide":    "pending",
		},
	})

	byID := make(map[string]protocoldb.IngredientSelection, len(sel.Ingredients))
	for _, s := range sel.Ingredients {
		byID[s.IngredientID] = s
	}

	cleanser := byID["cleanser"]
	assert.Equal(t, protocoldb.IngredientStateActive, cleanser.State)
	assert.Equal(t, "CeraVe Foaming Cleanser", cleanser.ProductName)

	assert.Equal(t, protocoldb.IngredientStateSkipped, byID["salicylic_acid"].State)

	// An explicit pending choice is an order on the way.
	niacinamide := byID["niacinamide"]
	assert.Equal(t, protocoldb.IngredientStatePending, niacinamide.State)
	assert.True(t, niacinamide.WaitingForDelivery)

	// No choice recorded means the user still has to buy it.
	moisturizer := byID["moisturizer"]
	assert.Equal(t, protocoldb.IngredientStatePending, moisturizer.State)
	assert.False(t, moisturizer.WaitingForDelivery)
}

func TestBuildSelectionsMapsExerciseChoices(t *testing.T) {
	a := newAssembler(t)

	sel := a.BuildSelections(&protocoldb.OnboardingAnswers{
		Concerns: []string{"jawline"},
		ExerciseChoices: map[string]string{
			"jaw_curls": "skipped",
		},
	})
	require.Len(t, sel.Exercises, 3)

	byID := make(map[string]protocoldb.ExerciseSelection, len(sel.Exercises))
	for _, s := range sel.Exercises {
		byID[s.ExerciseID] = s
	}
	assert.Equal(t, protocoldb.ExerciseStateAdded, byID["mewing_exercise"].State)
	assert.Equal(t, protocoldb.ExerciseStateSkipped, byID["jaw_curls"].State)
	assert.Equal(t, protocoldb.ExerciseStateAdded, byID["chin_tucks"].State)
}

func TestBuildSelectionsEmptyAnswers(t *testing.T) {
	a := newAssembler(t)

	sel := a.BuildSelections(&protocoldb.OnboardingAnswers{})
	assert.Empty(t, sel.Ingredients)
	assert.Empty(t, sel.Exercises)
}
