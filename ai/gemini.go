// gemini.go - Client for the Gemini text-generation service

package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.0-flash" // Model used for every mentor call

// Per-call ceiling so a slow generation reports a failure instead of hanging.
const generateTimeout = 60 * time.Second

var client *genai.Client // Global Gemini client, set once by Connect

// Connect creates the Gemini client. Called once at startup, like the
// database connection.
func Connect(apiKey string) error {
	c, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	client = c
	return nil
}

// generate runs one prompt against the model and returns the raw text.
// jsonMode asks the API for a JSON-typed response, which the parsers then
// validate strictly; model output is never evaluated, only unmarshalled.
func generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if client == nil {
		return "", errors.New("gemini client not connected (missing GEMINI_API_KEY?)")
	}
	var cfg *genai.GenerateContentConfig
	if jsonMode {
		cfg = &genai.GenerateContentConfig{ResponseMIMEType: "application/json"}
	}
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	resp, err := client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return resp.Text(), nil
}

// SuggestFields asks the model for 4 career fields matching the interests.
func SuggestFields(ctx context.Context, interests string) ([]string, error) {
	raw, err := generate(ctx, fieldsPrompt(interests), true)
	if err != nil {
		return nil, err
	}
	return ParseFields(raw)
}

// Guidance generates the markdown career guide for a chosen field.
func Guidance(ctx context.Context, interests, field string) (string, error) {
	return generate(ctx, guidancePrompt(interests, field), false)
}

// Roadmap generates a 4-phase career roadmap and parses it into phases.
func Roadmap(ctx context.Context, field string) ([]RoadmapPhase, error) {
	raw, err := generate(ctx, roadmapPrompt(field), false)
	if err != nil {
		return nil, err
	}
	return ParseRoadmap(raw)
}
