// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package progress

// Screen identifies a screen in the onboarding flow.
type Screen string

const (
	ScreenWelcome          Screen = "welcome"
	ScreenGender           Screen = "gender"
	ScreenConcerns         Screen = "concerns"
	ScreenSelfRating       Screen = "self_rating"
	ScreenPhotos           Screen = "photos"
	ScreenRatingReveal     Screen = "rating_reveal"
	ScreenReviewAsk        Screen = "review_ask"
	ScreenReferral         Screen = "referral"
	ScreenProtocolOverview Screen = "protocol_overview"
	ScreenShopping         Screen = "shopping"
	ScreenPaywall          Screen = "paywall"
	ScreenComplete         Screen = "complete"
)

// migrations rewrites screen IDs retired by app updates, so saved
// progress from an old version resumes on a screen that still exists.
var migrations = map[Screen]Screen{
	"review_permissions": ScreenReviewAsk,
	"rating":             ScreenSelfRating,
	"photo_capture":      ScreenPhotos,
	"protocol_intro":     ScreenProtocolOverview,
}

// Migrate maps a possibly retired screen ID to its current equivalent.
func Migrate(screen Screen) Screen {
	if current, ok := migrations[screen]; ok {
		return current
	}
	return screen
}
