// Package examples fetches per-component usage examples from the Salt Q&A
// service and caches them for the lifetime of a generator instance.
package examples

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Source supplies a usage example for a component type. Implementations
// return an empty string when no example is available.
type Source interface {
	ComponentExample(ctx context.Context, componentType string) (string, error)
}

// QnAClient talks to the design-system Q&A endpoint.
type QnAClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewQnAClient creates a Q&A client. An empty timeout uses the default.
func NewQnAClient(baseURL, apiKey string, timeout time.Duration) *QnAClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &QnAClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type qnaRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type qnaResponse struct {
	Answer *string `json:"answer"`
}

// ComponentExample asks the Q&A service for a usage example of the given
// component type. A null or empty answer returns the empty string.
func (c *QnAClient) ComponentExample(ctx context.Context, componentType string) (string, error) {
	payload, err := json.Marshal(qnaRequest{
		Question: fmt.Sprintf("Show a usage example of the %s component", componentType),
		Context:  "salt-design-system",
	})
	if err != nil {
		return "", fmt.Errorf("encoding qna request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/qna", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building qna request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("qna request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("qna request: unexpected status %d", resp.StatusCode)
	}

	var out qnaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding qna response: %w", err)
	}
	if out.Answer == nil {
		return "", nil
	}
	return *out.Answer, nil
}
