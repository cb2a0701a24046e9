package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is used when no model name is configured
const DefaultModel = "gemini-2.5-flash"

// Model is a generative text backend
type Model interface {
	// Generate answers a text prompt
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateWithImage answers a prompt about one inline image
	GenerateWithImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error)
}

// Gemini is a Model backed by the Gemini API
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini API client for the given key and model
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate implements Model
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// GenerateWithImage implements Model
func (g *Gemini) GenerateWithImage(ctx context.Context, prompt, mimeType string, image []byte) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate with image: %w", err)
	}
	return resp.Text(), nil
}
