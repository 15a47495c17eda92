// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var catalogJSON []byte

// Timing is a slot of the day a routine ingredient is applied in.
type Timing string

const (
	TimingMorning Timing = "morning"
	TimingEvening Timing = "evening"
)

// DefaultPriority is the priority assigned to problems without content
// metadata. Lower values are walked first when attributing shared
// ingredient time to a problem.
const DefaultPriority = 99

// Problem is a user-selectable concern and the catalog items that
// address it.
type Problem struct {
	// ID is the unique ID of the problem.
	ID string `json:"id"`

	// Priority orders problems when attributing incremental routine
	// time. Zero means unset and is replaced by DefaultPriority.
	Priority int `json:"priority"`

	// Ingredients are the IDs of the recommended ingredients.
	Ingredients []string `json:"recommended_ingredients"`

	// Exercises are the IDs of the recommended exercises.
	Exercises []string `json:"recommended_exercises"`
}

// IngredientSession is the per-application timing metadata of an
// ingredient.
type IngredientSession struct {
	// DurationSeconds is how long one application takes. Zero means
	// unset; callers fall back to 30 seconds.
	DurationSeconds int `json:"duration_seconds"`

	// WaitAfterSeconds is how long to wait after applying before the
	// next routine step.
	WaitAfterSeconds int `json:"wait_after_seconds"`

	// Premium is whether the ingredient is only part of paid routines.
	Premium bool `json:"premium"`
}

// Ingredient is a catalog skincare ingredient.
type Ingredient struct {
	// ID is the unique ID of the ingredient.
	ID string `json:"id"`

	// RoutineOrder is the position of the ingredient within an
	// assembled routine, ascending.
	RoutineOrder int `json:"routine_order"`

	// Timing is the set of slots the ingredient is applied in.
	Timing []Timing `json:"timing_options"`

	// Session is the timing metadata for one application.
	Session IngredientSession `json:"session"`
}

// ExerciseSession is the timing metadata of an exercise.
type ExerciseSession struct {
	// DurationSeconds is how long one session takes.
	DurationSeconds int `json:"duration_seconds"`
}

// Exercise is a catalog facial or scalp exercise.
type Exercise struct {
	// ID is the unique ID of the exercise.
	ID string `json:"id"`

	// Session is the timing metadata for one session, if defined.
	Session *ExerciseSession `json:"session"`

	// DefaultDuration is the fallback duration in seconds when Session
	// is not defined.
	DefaultDuration int `json:"default_duration"`
}

type catalogData struct {
	Problems    []Problem    `json:"problems"`
	Ingredients []Ingredient `json:"ingredients"`
	Exercises   []Exercise   `json:"exercises"`
}

// Catalog is a read-only lookup over the bundled problem, ingredient,
// and exercise tables.
type Catalog struct {
	problems    map[string]*Problem
	ingredients map[string]*Ingredient
	exercises   map[string]*Exercise
}

// New loads the bundled catalog.
func New() (*Catalog, error) {
	var data catalogData
	if err := json.Unmarshal(catalogJSON, &data); err != nil {
		return nil, fmt.Errorf("catalog: unmarshalling catalog data: %w", err)
	}

	c := &Catalog{
		problems:    make(map[string]*Problem, len(data.Problems)),
		ingredients: make(map[string]*Ingredient, len(data.Ingredients)),
		exercises:   make(map[string]*Exercise, len(data.Exercises)),
	}
	for i := range data.Problems {
		p := &data.Problems[i]
		if p.Priority == 0 {
			p.Priority = DefaultPriority
		}
		c.problems[p.ID] = p
	}
	for i := range data.Ingredients {
		c.ingredients[data.Ingredients[i].ID] = &data.Ingredients[i]
	}
	for i := range data.Exercises {
		c.exercises[data.Exercises[i].ID] = &data.Exercises[i]
	}
	return c, nil
}

// FindProblem returns the problem with the given ID, or nil if there is
// none. A miss contributes nothing to routine assembly.
func (c *Catalog) FindProblem(id string) *Problem {
	return c.problems[id]
}

// FindIngredient returns the ingredient with the given ID, or nil.
func (c *Catalog) FindIngredient(id string) *Ingredient {
	return c.ingredients[id]
}

// FindExercise returns the exercise with the given ID, or nil.
func (c *Catalog) FindExercise(id string) *Exercise {
	return c.exercises[id]
}

// Duration returns the duration in seconds of one session of the
// exercise.
func (e *Exercise) Duration() int {
	if e.Session != nil && e.Session.DurationSeconds > 0 {
		return e.Session.DurationSeconds
	}
	return e.DefaultDuration
}
