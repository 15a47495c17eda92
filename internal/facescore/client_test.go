// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

package facescore

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validAnalysisJSON = `{
	"overall": 6.4,
	"jawline": 6.1,
	"symmetry": 6.8,
	"skin_quality": 5.9,
	"cheekbones": 6.3,
	"eye_area": 6.5,
	"hair": 6.7,
	"masculinity": 6.2,
	"potential": 9.9,
	"advice_skin": "Cleanse twice daily.",
	"advice_jawline": "Mew daily.",
	"advice_eyes": "Use a caffeine eye cream.",
	"advice_hair": "Massage your scalp."
}`

func pinnedJitter() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func chatBody(content string) []byte {
	body, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return body
}

func TestParseAnalysis(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		analysis, err := parseAnalysis([]byte(validAnalysisJSON))
		require.NoError(t, err)
		assert.InDelta(t, 6.4, analysis.Overall, 0.001)
		assert.InDelta(t, 5.9, analysis.SkinQuality, 0.001)
		assert.Equal(t, "Mew daily.", analysis.AdviceJawline)
	})

	t.Run("missing field", func(t *testing.T) {
		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(validAnalysisJSON), &fields))
		delete(fields, "hair")
		data, err := json.Marshal(fields)
		require.NoError(t, err)

		_, err = parseAnalysis(data)
		assert.ErrorIs(t, err, ErrIncompleteAnalysis)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseAnalysis([]byte("I cannot rate this photo."))
		assert.Error(t, err)
	})
}

func TestScoreFaceMockWithoutKey(t *testing.T) {
	for _, key := range []string{"", "YOUR_API_KEY"} {
		c := NewClient(Config{APIKey: key, Jitter: pinnedJitter()})

		analysis, err := c.ScoreFace(context.Background(), &PhotoSet{Front: []byte("front")}, "male")
		require.NoError(t, err)
		assert.InDelta(t, 6.4, analysis.Overall, 0.001)
		assert.GreaterOrEqual(t, analysis.Potential, analysis.Overall+0.5)
		assert.LessOrEqual(t, analysis.Potential, 9.5)
		assert.False(t, analysis.CreatedAt.IsZero())
	}
}

func TestScoreFaceRemote(t *testing.T) {
	var gotAuth atomic.Value
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req.Model)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)
		assert.Len(t, req.Messages, 2)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatBody(validAnalysisJSON))
	}))
	defer ts.Close()

	c := NewClient(Config{
		Endpoint: ts.URL,
		APIKey:   "test-key",
		Jitter:   pinnedJitter(),
	})

	analysis, err := c.ScoreFace(context.Background(), &PhotoSet{Front: []byte("front"), Side: []byte("side")}, "male")
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth.Load())
	assert.InDelta(t, 6.1, analysis.Jawline, 0.001)

	// The endpoint claimed 9.9 potential; the local projection wins.
	assert.Less(t, analysis.Potential, 9.9)
	assert.GreaterOrEqual(t, analysis.Potential, analysis.Overall+0.5)
}

func TestScoreFaceClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, APIKey: "test-key"})

	_, err := c.ScoreFace(context.Background(), &PhotoSet{Front: []byte("front")}, "male")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestScoreFaceServerErrorRetried(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatBody(validAnalysisJSON))
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, APIKey: "test-key"})

	analysis, err := c.ScoreFace(context.Background(), &PhotoSet{Front: []byte("front")}, "male")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.InDelta(t, 6.4, analysis.Overall, 0.001)
}

func TestScoreFaceIncompleteResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatBody(`{"overall": 6.4}`))
	}))
	defer ts.Close()

	c := NewClient(Config{Endpoint: ts.URL, APIKey: "test-key"})

	_, err := c.ScoreFace(context.Background(), &PhotoSet{Front: []byte("front")}, "male")
	assert.ErrorIs(t, err, ErrIncompleteAnalysis)
}
