package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/mintmind/backend/internal/application/adapter"
)

// GeminiService implements the adapter.AdviceService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) adapter.AdviceService {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// Advise sends the prompt to Gemini and returns the generated reply text.
func (s *GeminiService) Advise(ctx context.Context, prompt string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.7)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	reply, err := extractText(resp)
	if err != nil {
		return "", err
	}
	return reply, nil
}

// extractText pulls the plain text out of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	reply := strings.TrimSpace(sb.String())
	if reply == "" {
		return "", fmt.Errorf("no text content in response")
	}
	return reply, nil
}
