// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package invitecode generates the 6-character codes shared by the
// referral room and pairwise referral mechanics.
package invitecode

import (
	"math/rand/v2"
	"strings"
)

// Length is the length of every generated code.
const Length = 6

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// FromUserID derives a code from the trailing characters of a user ID.
// Characters outside A-Z0-9 are replaced with random letters, as is any
// padding needed for short IDs, so the result is always Length uppercase
// alphanumerics.
func FromUserID(uid string) string {
	tail := uid
	if len(tail) > Length {
		tail = tail[len(tail)-Length:]
	}
	tail = strings.ToUpper(tail)

	var b strings.Builder
	b.Grow(Length)
	for _, c := range tail {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteByte(byte(c))
		} else {
			b.WriteByte(letters[rand.IntN(len(letters))])
		}
	}
	for b.Len() < Length {
		b.WriteByte(letters[rand.IntN(len(letters))])
	}
	return b.String()
}
