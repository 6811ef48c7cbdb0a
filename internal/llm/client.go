package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Chat roles accepted by the completions endpoint.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single role-tagged turn in a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tunes a single completion call. A zero MaxTokens means unbounded
// and is sent as the upstream sentinel -1.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Client abstracts the chat completion endpoint.
type Client interface {
	Complete(ctx context.Context, messages []Message, opts Options) (string, error)
}

// APIError reports a failed call to the completion endpoint. StatusCode is
// zero for transport-level failures.
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("llm api returned status code %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to call llm api: %v", e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// HTTPClient implements Client against an OpenAI-compatible chat completions
// endpoint. It performs exactly one request per call; there is no retry.
type HTTPClient struct {
	apiURL     string
	model      string
	httpClient *http.Client
}

// NewHTTPClient constructs a client for the given endpoint URL. The URL has
// no default; an empty value is a startup configuration error.
func NewHTTPClient(apiURL, model string, timeout time.Duration) (*HTTPClient, error) {
	if strings.TrimSpace(apiURL) == "" {
		return nil, fmt.Errorf("LLM_API_URL is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &HTTPClient{
		apiURL: apiURL,
		model:  model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends one synchronous completion request and returns the first
// choice's message content verbatim.
func (c *HTTPClient) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = -1
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: opts.Temperature,
		MaxTokens:   maxTokens,
		Stream:      false,
	})
	if err != nil {
		return "", &APIError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", &APIError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Err: err}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &APIError{Err: fmt.Errorf("response parse: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &APIError{Err: fmt.Errorf("response missing choices")}
	}

	return parsed.Choices[0].Message.Content, nil
}

var _ Client = (*HTTPClient)(nil)
