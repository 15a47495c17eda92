package util

import (
	"encoding/base64"
	"strings"
)

// ImageBytesToURL converts image bytes to a data URL (JPEG base64) for
// embedding in a scoring request.
func ImageBytesToURL(b []byte) string {
	if len(b) > 0 {
		return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(b)
	}
	return ""
}

// ImageURLToBytes decodes a base64 image, accepting either a bare
// base64 string or a full data URL.
func ImageURLToBytes(s string) ([]byte, error) {
	if _, after, ok := strings.Cut(s, ";base64,"); ok {
		s = after
	}
	if s == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(s)
}
