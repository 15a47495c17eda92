// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package routine

import (
	"math"
	"slices"
	"sort"

	"github.com/Joakimpedev/protocol-sub000/internal/catalog"
)

// Two exfoliating acids are never recommended together. When both are
// recommended, the BHA wins.
const (
	ingredientBHA = "salicylic_acid"
	ingredientAHA = "aha"
)

const defaultApplySeconds = 30

// Assembly is the assembled routine for a set of enabled concerns.
type Assembly struct {
	// IngredientIDs are the surviving ingredients, ordered by routine
	// order. Each ID appears at most once.
	IngredientIDs []string

	// ExerciseIDs are the surviving exercises, in first-recommended
	// order. Each ID appears at most once.
	ExerciseIDs []string

	// TotalMinutes is the daily time cost of the routine.
	TotalMinutes int
}

// Assembler builds routines from the catalog and a user's selected
// concerns.
type Assembler struct {
	catalog *catalog.Catalog
}

func NewAssembler(c *catalog.Catalog) *Assembler {
	return &Assembler{catalog: c}
}

// Assemble unions the recommendations of the enabled concerns into a
// deduplicated, conflict-resolved, time-costed routine. Concerns with no
// catalog entry contribute nothing.
func (a *Assembler) Assemble(enabledConcernIDs []string) Assembly {
	var ingredientIDs []string
	var exerciseIDs []string
	for _, concernID := range enabledConcernIDs {
		problem := a.catalog.FindProblem(concernID)
		if problem == nil {
			continue
		}
		for _, id := range problem.Ingredients {
			if !slices.Contains(ingredientIDs, id) {
				ingredientIDs = append(ingredientIDs, id)
			}
		}
		for _, id := range problem.Exercises {
			if !slices.Contains(exerciseIDs, id) {
				exerciseIDs = append(exerciseIDs, id)
			}
		}
	}

	var ingredients []*catalog.Ingredient
	for _, id := range ingredientIDs {
		ingredient := a.catalog.FindIngredient(id)
		if ingredient == nil || ingredient.Session.Premium {
			continue
		}
		ingredients = append(ingredients, ingredient)
	}

	hasBHA := slices.ContainsFunc(ingredients, func(i *catalog.Ingredient) bool {
		return i.ID == ingredientBHA
	})
	if hasBHA {
		ingredients = slices.DeleteFunc(ingredients, func(i *catalog.Ingredient) bool {
			return i.ID == ingredientAHA
		})
	}

	sort.SliceStable(ingredients, func(i, j int) bool {
		return ingredients[i].RoutineOrder < ingredients[j].RoutineOrder
	})

	seconds := 0
	resultIngredients := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		resultIngredients[i] = ingredient.ID
		seconds += applySeconds(ingredient)
	}

	var resultExercises []string
	for _, id := range exerciseIDs {
		exercise := a.catalog.FindExercise(id)
		if exercise == nil {
			continue
		}
		resultExercises = append(resultExercises, id)
		seconds += exercise.Duration()
	}

	minutes := int(math.Round(float64(seconds) / 60))
	if len(enabledConcernIDs) > 0 && minutes < 1 {
		minutes = 1
	}

	return Assembly{
		IngredientIDs: resultIngredients,
		ExerciseIDs:   resultExercises,
		TotalMinutes:  minutes,
	}
}

// applySeconds is the daily time cost of one ingredient: one application
// per matched timing slot, so an ingredient used both morning and
// evening counts twice.
func applySeconds(ingredient *catalog.Ingredient) int {
	duration := ingredient.Session.DurationSeconds
	if duration == 0 {
		duration = defaultApplySeconds
	}
	perSlot := duration + ingredient.Session.WaitAfterSeconds
	return perSlot * len(ingredient.Timing)
}

// IncrementalMinutes reports the additional minutes enabling concernID
// adds on top of the base set. Catalog items shared between concerns are
// claimed once, by the concern that comes first in catalog priority
// order, so summing IncrementalMinutes over all enabled concerns equals
// the assembled total.
func (a *Assembler) IncrementalMinutes(concernID string, baseEnabledConcernIDs []string) int {
	considered := make([]string, 0, len(baseEnabledConcernIDs)+1)
	for _, id := range baseEnabledConcernIDs {
		if !slices.Contains(considered, id) {
			considered = append(considered, id)
		}
	}
	if !slices.Contains(considered, concernID) {
		considered = append(considered, concernID)
	}
	sort.SliceStable(considered, func(i, j int) bool {
		return a.priority(considered[i]) < a.priority(considered[j])
	})

	pos := slices.Index(considered, concernID)
	without := a.Assemble(considered[:pos]).TotalMinutes
	with := a.Assemble(considered[:pos+1]).TotalMinutes
	return with - without
}

func (a *Assembler) priority(concernID string) int {
	if problem := a.catalog.FindProblem(concernID); problem != nil {
		return problem.Priority
	}
	return catalog.DefaultPriority
}
