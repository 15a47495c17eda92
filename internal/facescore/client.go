// Copyright (c) Protocol
// SPDX-License-Identifier: BUSL-1.1

// Package facescore persists selfie photos and turns them into a
// structured cosmetic rating via a remote vision endpoint.
package facescore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/Joakimpedev/protocol-sub000/internal/i18n"
	"github.com/Joakimpedev/protocol-sub000/internal/protocoldb"
	"github.com/Joakimpedev/protocol-sub000/internal/util"
)

const (
	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o"

	requestTimeout = 30 * time.Second
	maxTries       = 3
)

// ErrIncompleteAnalysis means the scoring endpoint returned a response
// missing required fields, which is a contract breach rather than a
// transient failure.
var ErrIncompleteAnalysis = errors.New("facescore: analysis missing required fields")

// APIError is a non-2xx response from the scoring endpoint.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("facescore: scoring request failed with status %d: %s", e.StatusCode, e.Body)
}

// Config configures a scoring Client. Zero values fall back to the
// OpenAI chat completions endpoint and defaults.
type Config struct {
	// Endpoint is the chat completions URL to post to.
	Endpoint string

	// Model is the vision model to request.
	Model string

	// APIKey is the bearer key. Empty or a placeholder disables the
	// remote call and returns the fixed mock result instead.
	APIKey string

	// HTTPClient overrides the HTTP client used for requests.
	HTTPClient *http.Client

	// Jitter overrides the random source for the potential jitter,
	// letting tests pin it.
	Jitter *rand.Rand
}

func NewClient(conf Config) *Client {
	c := &Client{
		endpoint:   conf.Endpoint,
		model:      conf.Model,
		apiKey:     conf.APIKey,
		httpClient: conf.HTTPClient,
		jitter:     conf.Jitter,
	}
	if c.endpoint == "" {
		c.endpoint = defaultEndpoint
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: requestTimeout}
	}
	if c.jitter == nil {
		c.jitter = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
	jitter     *rand.Rand
}

// ScoreFace submits the photo set and a gender hint to the scoring
// endpoint and returns the validated analysis. The potential score is
// always recomputed locally, never trusted from the endpoint. Without a
// usable API key the fixed mock result is returned instead.
func (c *Client) ScoreFace(ctx context.Context, photos *PhotoSet, genderHint string) (*protocoldb.FaceAnalysis, error) {
	if !c.remoteEnabled() {
		analysis := mockAnalysis()
		analysis.Potential = c.computePotential(analysis)
		analysis.CreatedAt = time.Now()
		return analysis, nil
	}

	analysis, err := backoff.Retry(ctx, func() (*protocoldb.FaceAnalysis, error) {
		res, err := c.score(ctx, photos, genderHint)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusInternalServerError {
				return nil, err
			}
			return nil, backoff.Permanent(err)
		}
		return res, nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(maxTries))
	if err != nil {
		return nil, err
	}

	analysis.Potential = c.computePotential(analysis)
	analysis.CreatedAt = time.Now()
	return analysis, nil
}

func (c *Client) remoteEnabled() bool {
	return c.apiKey != "" && c.apiKey != "YOUR_API_KEY"
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) score(ctx context.Context, photos *PhotoSet, genderHint string) (*protocoldb.FaceAnalysis, error) {
	parts := []contentPart{
		{Type: "text", Text: "Gender: " + genderHint + "\nAdvice language: " + i18n.UserLanguage(ctx)},
		{Type: "image_url", ImageURL: &imageURL{URL: util.ImageBytesToURL(photos.Front)}},
	}
	if len(photos.Side) > 0 {
		parts = append(parts, contentPart{Type: "image_url", ImageURL: &imageURL{URL: util.ImageBytesToURL(photos.Side)}})
	}

	reqJSON, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: scoringPrompt},
			{Role: "user", Content: parts},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("facescore: marshalling scoring request: %w", err)
	}

	httpReq, _ := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqJSON))
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("facescore: sending scoring request: %w", err)
	}
	defer func() {
		_ = httpRes.Body.Close()
	}()
	if httpRes.StatusCode != http.StatusOK {
		body, err := io.ReadAll(httpRes.Body)
		if err != nil {
			return nil, fmt.Errorf("facescore: reading scoring error body: %w", err)
		}
		return nil, &APIError{StatusCode: httpRes.StatusCode, Body: string(body)}
	}

	var res chatResponse
	if err := json.NewDecoder(httpRes.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("facescore: decoding scoring response: %w", err)
	}
	if len(res.Choices) == 0 || res.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("facescore: empty scoring response: %w", ErrIncompleteAnalysis)
	}
	return parseAnalysis([]byte(res.Choices[0].Message.Content))
}

// requiredFields are the 13 fields every analysis must carry.
var requiredFields = []string{
	"overall", "jawline", "symmetry", "skin_quality", "cheekbones",
	"eye_area", "hair", "masculinity", "potential",
	"advice_skin", "advice_jawline", "advice_eyes", "advice_hair",
}

func parseAnalysis(data []byte) (*protocoldb.FaceAnalysis, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("facescore: unmarshalling analysis: %w", err)
	}
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteAnalysis, field)
		}
	}

	var analysis protocoldb.FaceAnalysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("facescore: unmarshalling analysis: %w", err)
	}
	return &analysis, nil
}
