// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package facescore

import "github.com/Joakimpedev/protocol-sub000/internal/protocoldb"

// mockAnalysis is the fixed result used when no scoring credentials are
// configured. Deterministic except for the potential jitter.
func mockAnalysis() *protocoldb.FaceAnalysis {
	return &protocoldb.FaceAnalysis{
		Overall:       6.4,
		Jawline:       6.1,
		Symmetry:      6.8,
		SkinQuality:   5.9,
		Cheekbones:    6.3,
		EyeArea:       6.5,
		Hair:          6.7,
		Masculinity:   6.2,
		AdviceSkin:    "Cleanse twice daily and add a BHA to clear congestion.",
		AdviceJawline: "Daily mewing and reducing sodium will sharpen definition.",
		AdviceEyes:    "Use a caffeine eye cream in the morning to reduce puffiness.",
		AdviceHair:    "A thicker texture is achievable with scalp massage and a mild shampoo.",
	}
}
