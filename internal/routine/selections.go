// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package routine

import (
	"strings"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

// Selections are the persistable per-user selection records for an
// assembled routine.
type Selections struct {
	Ingredients []protocoldb.IngredientSelection
	Exercises   []protocoldb.ExerciseSelection
}

// BuildSelections assembles the routine for the user's final concern set
// and maps each surviving item to a selection record, applying any
// shopping and exercise choices recorded during onboarding.
func (a *Assembler) BuildSelections(answers *protocoldb.OnboardingAnswers) Selections {
	assembly := a.Assemble(answers.Concerns)

	var sel Selections
	sel.Ingredients = make([]protocoldb.IngredientSelection, len(assembly.IngredientIDs))
	for i, id := range assembly.IngredientIDs {
		sel.Ingredients[i] = ingredientSelection(id, answers.ShoppingChoices[id])
	}

	sel.Exercises = make([]protocoldb.ExerciseSelection, len(assembly.ExerciseIDs))
	for i, id := range assembly.ExerciseIDs {
		state := protocoldb.ExerciseStateAdded
		if answers.ExerciseChoices[id] == string(protocoldb.ExerciseStateSkipped) {
			state = protocoldb.ExerciseStateSkipped
		}
		sel.Exercises[i] = protocoldb.ExerciseSelection{
			ExerciseID: id,
			State:      state,
		}
	}
	return sel
}

func ingredientSelection(id string, choice string) protocoldb.IngredientSelection {
	sel := protocoldb.IngredientSelection{
		IngredientID: id,
		State:        protocoldb.IngredientStatePending,
	}
	switch {
	case strings.HasPrefix(choice, "owned:"):
		sel.State = protocoldb.IngredientStateActive
		sel.ProductName = strings.TrimPrefix(choice, "owned:")
	case choice == string(protocoldb.IngredientStateSkipped):
		sel.State = protocoldb.IngredientStateSkipped
	case choice == string(protocoldb.IngredientStatePending):
		// An explicit pending choice means the user ordered a product
		// that has not arrived, unlike the no-choice default.
		sel.WaitingForDelivery = true
	}
	return sel
}
