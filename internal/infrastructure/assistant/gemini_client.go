// Package assistant talks to the Gemini generateContent REST API.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mixto_gestao/internal/config"
	"mixto_gestao/internal/usecase/interfaces"
)

const maxBodySize = 1 << 20

var (
	// ErrMissingAssistantCredential is returned per call when no API key is configured.
	ErrMissingAssistantCredential = errors.New("assistant: missing API key")
	ErrUnauthorized               = errors.New("assistant: unauthorized (API key invalid)")
	ErrRateLimited                = errors.New("assistant: rate limited")
	ErrEmptyAnswer                = errors.New("assistant: empty answer")
)

// GeminiClient implements interfaces.IChatProvider.
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

var _ interfaces.IChatProvider = (*GeminiClient)(nil)

// NewGeminiClient never fails; a missing key surfaces on Ask.
func NewGeminiClient(cfg config.AssistantConfig) *GeminiClient {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiClient{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *GeminiClient) Ask(ctx context.Context, systemPrompt, question string) (string, error) {
	if c == nil || c.apiKey == "" {
		return "", ErrMissingAssistantCredential
	}

	body := generateRequest{Contents: []content{{Role: "user", Parts: []part{{Text: question}}}}}
	if systemPrompt != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: systemPrompt}}}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("assistant: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assistant: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out generateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&out); err != nil {
		return "", fmt.Errorf("assistant: decoding response: %w", err)
	}

	var sb strings.Builder
	for _, cand := range out.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
		if sb.Len() > 0 {
			break
		}
	}
	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
