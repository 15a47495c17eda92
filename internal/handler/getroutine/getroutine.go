// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package getroutine

import (
	"context"
	"slices"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/Joakimpedev/protocol-sub000/internal/api"
	"github.com/Joakimpedev/protocol-sub000/internal/progress"
	"github.com/Joakimpedev/protocol-sub000/internal/routine"
)

func NewHandler(assembler *routine.Assembler, store *progress.Store) *Handler {
	return &Handler{
		assembler: assembler,
		store:     store,
	}
}

type Handler struct {
	assembler *routine.Assembler
	store     *progress.Store
}

// GetRoutine assembles the candidate routine for the protocol overview
// screen, along with the per-concern incremental minutes shown next to
// each toggle. Concerns default to the ones in saved progress.
func (h *Handler) GetRoutine(ctx context.Context, req *api.GetRoutineRequest) (*api.GetRoutineResponse, error) {
	concerns := slices.Clone(req.Concerns)
	if len(concerns) == 0 {
		saved, err := h.store.Load(ctx, firebaseauth.TokenFromContext(ctx).UID)
		if err != nil {
			return nil, err
		}
		if saved != nil {
			concerns = saved.Answers.Concerns
		}
	}

	assembly := h.assembler.Assemble(concerns)
	incremental := make(map[string]int, len(concerns))
	for _, concern := range concerns {
		incremental[concern] = h.assembler.IncrementalMinutes(concern, concerns)
	}

	return &api.GetRoutineResponse{
		IngredientIDs:      assembly.IngredientIDs,
		ExerciseIDs:        assembly.ExerciseIDs,
		TotalMinutes:       assembly.TotalMinutes,
		IncrementalMinutes: incremental,
	}, nil
}
