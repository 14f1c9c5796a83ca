package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/chandravishaal/AI-Stack-Journal-Backend/config"
)

// summarizePrompt frames the article for a developer audience.
const summarizePrompt = `Summarize the article below for a developer and AI enthusiast audience. Provide:
TL;DR one line.
3 concise bullets with the important points, using arrows → for bullet points.
Article:
%s`

// Summarizer relays article text to the Gemini API and returns the generated
// summary verbatim. No caching, no retries.
type Summarizer struct {
	apiKey string
	model  string
}

// NewSummarizer builds the summarizer from config. A missing API key is
// tolerated here; Summarize fails on first use.
func NewSummarizer(cfg *config.Config) *Summarizer {
	return &Summarizer{apiKey: cfg.GoogleAPIKey, model: cfg.GoogleModel}
}

// Summarize sends the article text to Gemini and returns the summary text.
// The caller is responsible for length gating before this is invoked.
func (s *Summarizer) Summarize(ctx context.Context, article string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("GOOGLE_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	resp, err := client.GenerativeModel(s.model).GenerateContent(ctx, genai.Text(fmt.Sprintf(summarizePrompt, article)))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no summary returned by the API")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("unexpected response shape from the API")
	}
	return string(text), nil
}
