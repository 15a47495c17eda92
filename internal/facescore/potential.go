// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package facescore

import (
	"math"

	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
)

// improvability weights how much headroom in a category translates into
// achievable improvement. Skin responds most to a routine, bone
// structure barely at all.
var improvability = []struct {
	score  func(*protocoldb.FaceAnalysis) float64
	weight float64
}{
	{func(a *protocoldb.FaceAnalysis) float64 { return a.SkinQuality }, 1.0},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.Hair }, 0.9},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.Jawline }, 0.7},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.Masculinity }, 0.4},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.EyeArea }, 0.3},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.Cheekbones }, 0.2},
	{func(a *protocoldb.FaceAnalysis) float64 { return a.Symmetry }, 0.1},
}

func (c *Client) computePotential(a *protocoldb.FaceAnalysis) float64 {
	jitter := c.jitter.Float64()*0.6 - 0.3
	return potentialWithJitter(a, jitter)
}

// potentialWithJitter projects the achievable overall score from the
// category headroom, with jitter in [-0.3, 0.3] already drawn.
func potentialWithJitter(a *protocoldb.FaceAnalysis, jitter float64) float64 {
	p := a.Overall
	for _, cat := range improvability {
		room := math.Max(0, 9.0-cat.score(a))
		p += room * cat.weight * 0.12
	}
	p += jitter

	p = math.Max(p, a.Overall+0.5)
	p = math.Min(p, 9.5)
	return math.Round(p*10) / 10
}
