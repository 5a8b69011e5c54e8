package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyCompletion is returned when the endpoint answers with a
// well-formed body that carries no choices.
var ErrEmptyCompletion = errors.New("no choices in response")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ChatClient talks to an OpenAI-style chat-completions endpoint with a
// bearer key. One request, one reply, no retries: callers decide what a
// failure means.
type ChatClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewChatClient(baseURL, apiKey, model string) *ChatClient {
	return &ChatClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Complete sends prompt as a single user message and returns the first
// choice's content.
func (cl *ChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatRequest{
		Model:    cl.model,
		Messages: []Message{{Role: "user", Content: prompt}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("chat marshal failed: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		cl.baseURL+"/chat/completions",
		bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("chat request create failed: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+cl.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := cl.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat http %d", resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("chat decode failed: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return chatResp.Choices[0].Message.Content, nil
}
