// Package suggest builds spending advice from an aggregated snapshot by
// calling a chat-completion model. It is the only outbound dependency
// of the application besides the database.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/config"

	openai "github.com/sashabaranov/go-openai"
)

// Snapshot is the aggregated view sent to the model: totals plus the
// recent-activity feed, never the full record history.
type Snapshot struct {
	TotalIncome   float64            `json:"total_income"`
	TotalExpenses float64            `json:"total_expenses"`
	Balance       float64            `json:"balance"`
	Recent        []analytics.Record `json:"recent_transactions"`
}

// Advice is the categorized suggestion lists shown on the dashboard.
type Advice struct {
	Savings   []string `json:"savings"`
	Budgeting []string `json:"budgeting"`
	Warnings  []string `json:"warnings"`
}

type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// New returns nil when no API key is configured; the suggestions
// endpoint then reports the feature as unavailable.
func New(cfg config.AIConfig) *Client {
	if cfg.APIKey == "" {
		return nil
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		api:     openai.NewClient(cfg.APIKey),
		model:   model,
		timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

const systemPrompt = `You are a personal finance assistant. Given a JSON
snapshot of a user's finances, respond with ONLY a JSON object of the
form {"savings": [...], "budgeting": [...], "warnings": [...]} where
each list holds short, concrete suggestion strings. No prose outside
the JSON.`

// Suggestions asks the model for advice on the snapshot. The call is
// bounded by the configured timeout on top of the caller's context.
func (c *Client) Suggestions(ctx context.Context, snap Snapshot) (*Advice, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	return parseAdvice(resp.Choices[0].Message.Content)
}

// parseAdvice decodes the model output, tolerating markdown code fences
// around the JSON.
func parseAdvice(raw string) (*Advice, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var advice Advice
	if err := json.Unmarshal([]byte(cleaned), &advice); err != nil {
		return nil, fmt.Errorf("parse advice: %w", err)
	}
	return &advice, nil
}
