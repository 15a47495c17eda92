// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"github.com/curioswitch/go-curiostack/config"
)

type Scoring struct {
	// Endpoint is the chat completions URL of the vision scoring
	// endpoint. Empty uses the OpenAI default.
	Endpoint string `koanf:"endpoint"`

	// Model is the vision model to request.
	Model string `koanf:"model"`

	// APIKey is the scoring API key. Empty falls back to the
	// OPENAI_API_KEY environment variable; with neither set, scoring
	// returns the fixed mock result.
	APIKey string `koanf:"apikey"`
}

type DevTools struct {
	// Enabled registers the dev-only endpoints such as room filling.
	// Never enabled in production configs.
	Enabled bool `koanf:"enabled"`
}

type Config struct {
	config.Common

	// Scoring is the configuration for the face scoring endpoint.
	Scoring Scoring `koanf:"scoring"`

	// DevTools is the configuration for dev-only endpoints.
	DevTools DevTools `koanf:"devtools"`
}
