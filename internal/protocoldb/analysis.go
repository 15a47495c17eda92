// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package protocoldb

import "time"

// FaceAnalysis is the structured result of one face scoring run, cached
// in the analyses collection for a user. All category scores are on a
// 1.0-10.0 scale.
type FaceAnalysis struct {
	Overall     float64 `firestore:"overall" json:"overall"`
	Jawline     float64 `firestore:"jawline" json:"jawline"`
	Symmetry    float64 `firestore:"symmetry" json:"symmetry"`
	SkinQuality float64 `firestore:"skinQuality" json:"skin_quality"`
	Cheekbones  float64 `firestore:"cheekbones" json:"cheekbones"`
	EyeArea     float64 `firestore:"eyeArea" json:"eye_area"`
	Hair        float64 `firestore:"hair" json:"hair"`
	Masculinity float64 `firestore:"masculinity" json:"masculinity"`

	// Potential is always recomputed from the category scores rather
	// than trusted from the scoring endpoint.
	Potential float64 `firestore:"potential" json:"potential"`

	AdviceSkin    string `firestore:"adviceSkin" json:"advice_skin"`
	AdviceJawline string `firestore:"adviceJawline" json:"advice_jawline"`
	AdviceEyes    string `firestore:"adviceEyes" json:"advice_eyes"`
	AdviceHair    string `firestore:"adviceHair" json:"advice_hair"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `firestore:"createdAt" json:"-"`
}
