// Package gemini wraps the Google GenAI SDK for the plain-language result
// descriptions shown next to the calculation.
package gemini

import (
	"context"
	"fmt"

	"github.com/alquilerapp/rent-service/internal/config"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Client generates text with the Gemini API.
type Client struct {
	apiKey string
	model  string
	log    *logrus.Logger
}

// NewClient initializes a Gemini client. The API key may be empty; in that
// case every generation call fails with a configuration error.
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		log:    log,
	}
}

// GenerateDescription sends the prompt to Gemini and returns the response
// text.
func (c *Client) GenerateDescription(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.4)),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	c.log.Debugf("Generated description of %d characters", len(text))
	return text, nil
}
