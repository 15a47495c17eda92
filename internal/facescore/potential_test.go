// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package facescore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

func TestPotentialWithJitter(t *testing.T) {
	a := mockAnalysis()

	// Weighted headroom of the mock scores adds just under 1.2 points.
	assert.InDelta(t, 7.6, potentialWithJitter(a, 0), 0.001)
	assert.InDelta(t, 7.9, potentialWithJitter(a, 0.3), 0.001)
	assert.InDelta(t, 7.3, potentialWithJitter(a, -0.3), 0.001)
}

func TestPotentialFloorsAboveOverall(t *testing.T) {
	a := &protocoldb.FaceAnalysis{
		Overall: 8.8, Jawline: 9, Symmetry: 9, SkinQuality: 9,
		Cheekbones: 9, EyeArea: 9, Hair: 9, Masculinity: 9,
	}

	// No headroom and negative jitter still promise at least half a point.
	assert.InDelta(t, 9.3, potentialWithJitter(a, -0.3), 0.001)
}

func TestPotentialCapped(t *testing.T) {
	a := &protocoldb.FaceAnalysis{
		Overall: 9.4, Jawline: 9, Symmetry: 9, SkinQuality: 9,
		Cheekbones: 9, EyeArea: 9, Hair: 9, Masculinity: 9,
	}

	assert.InDelta(t, 9.5, potentialWithJitter(a, 0.3), 0.001)
}

func TestComputePotentialSeededDeterminism(t *testing.T) {
	a := mockAnalysis()

	c1 := NewClient(Config{Jitter: pinnedJitter()})
	c2 := NewClient(Config{Jitter: pinnedJitter()})
	assert.InDelta(t, c1.computePotential(a), c2.computePotential(a), 0.001)
}
