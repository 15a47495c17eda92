// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package activateroutine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/httpapi"
	"github.com/Joakimpedev/protocol-sub000/internal/progress"
	"github.com/Joakimpedev/protocol-sub000/internal/routine"
)

var errNoAnswers = errors.New("activateroutine: no onboarding answers recorded")

func NewHandler(store *firestore.Client, assembler *routine.Assembler, prog *progress.Store) *Handler {
	return &Handler{
		store:     store,
		assembler: assembler,
		progress:  prog,
	}
}

type Handler struct {
	store     *firestore.Client
	assembler *routine.Assembler
	progress  *progress.Store
}

// ActivateRoutine finalizes the user's routine from their onboarding
// answers: builds the selection records, persists them to the profile,
// and clears the saved flow progress.
func (h *Handler) ActivateRoutine(ctx context.Context, _ *api.ActivateRoutineRequest) (*api.ActivateRoutineResponse, error) {
	uid := firebaseauth.TokenFromContext(ctx).UID

	saved, err := h.progress.Load(ctx, uid)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, httpapi.NewError(http.StatusBadRequest, errNoAnswers)
	}
	answers := saved.Answers

	selections := h.assembler.BuildSelections(&answers)

	if _, err := h.store.Collection("users").Doc(uid).Set(ctx, map[string]any{
		"userId":               uid,
		"gender":               answers.Gender,
		"concerns":             answers.Concerns,
		"selfRating":           answers.SelfRating,
		"ingredientSelections": selections.Ingredients,
		"exerciseSelections":   selections.Exercises,
		"routineStartedAt":     time.Now(),
	}, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("activateroutine: saving profile: %w", err)
	}

	// Progress is only useful until the routine starts; a failed clear
	// is not worth failing the activation.
	if err := h.progress.Clear(ctx, uid); err != nil {
		slog.WarnContext(ctx, "activateroutine: clearing progress", "error", err)
	}

	res := &api.ActivateRoutineResponse{
		Ingredients: make([]api.IngredientSelection, len(selections.Ingredients)),
		Exercises:   make([]api.ExerciseSelection, len(selections.Exercises)),
	}
	for i, sel := range selections.Ingredients {
		res.Ingredients[i] = api.IngredientSelection{
			IngredientID:       sel.IngredientID,
			ProductName:        sel.ProductName,
			State:              string(sel.State),
			WaitingForDelivery: sel.WaitingForDelivery,
		}
	}
	for i, sel := range selections.Exercises {
		res.Exercises[i] = api.ExerciseSelection{
			ExerciseID: sel.ExerciseID,
			State:      string(sel.State),
		}
	}
	return res, nil
}
