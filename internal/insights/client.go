package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"blockday/internal/domain"
	"blockday/internal/errors"
)

const (
	maxRetries   = 3
	initialDelay = 1 * time.Second
)

const systemPrompt = `You are a productivity coach reviewing one user's day.
Given their task list and focus sessions, respond with a single JSON object
and nothing else, shaped as:
{"score": <number 0-100>, "summary": "<short paragraph>", "recommendations": ["<tip>", ...]}`

// Client calls an OpenAI-compatible chat completions endpoint and
// parses the structured insight out of the reply.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type insightPayload struct {
	Score           float64  `json:"score"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}

// NewClient creates a new insights client
func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// RequestInsight sends the summary payload and parses the structured
// reply. Failures never touch stored state; the caller decides whether
// to keep the previous insight.
func (c *Client) RequestInsight(ctx context.Context, summary Summary) (*domain.Insight, error) {
	if c.apiKey == "" {
		return nil, errors.NewExternalError("insights", fmt.Errorf("BD_INSIGHTS_API_KEY not set"))
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, errors.NewExternalError("insights", fmt.Errorf("marshal summary: %w", err))
	}

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: string(payload)},
		},
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.NewExternalError("insights", fmt.Errorf("marshal request: %w", err))
	}

	requestID := uuid.NewString()

	// Retry with exponential backoff: 1s, 2s, 4s
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, errors.NewExternalError("insights", ctx.Err())
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, errors.NewExternalError("insights", fmt.Errorf("create request: %w", err))
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("X-Request-ID", requestID)

		resp, err := c.client.Do(httpReq)
		if err != nil {
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("read response body: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr apiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				lastErr = fmt.Errorf("insights API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
			} else {
				lastErr = fmt.Errorf("insights API error (%d): %s", resp.StatusCode, string(respBody))
			}

			// Retry on rate limit or server errors only
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return nil, errors.NewExternalError("insights", lastErr)
		}

		insight, err := parseInsight(respBody, requestID)
		if err != nil {
			return nil, errors.NewExternalError("insights", err)
		}
		return insight, nil
	}

	return nil, errors.NewExternalError("insights", lastErr)
}

// parseInsight unwraps the chat completion and decodes the structured
// JSON the model was asked to produce. Code fences around the JSON are
// tolerated; anything else malformed is an error.
func parseInsight(respBody []byte, requestID string) (*domain.Insight, error) {
	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("response contained no choices")
	}

	content := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var payload insightPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode insight payload: %w", err)
	}

	insight := &domain.Insight{
		RequestID:       requestID,
		Score:           payload.Score,
		Summary:         payload.Summary,
		Recommendations: payload.Recommendations,
		CreatedAt:       time.Now(),
	}
	if !insight.IsValid() {
		return nil, fmt.Errorf("insight payload out of range: score=%v", payload.Score)
	}
	return insight, nil
}
