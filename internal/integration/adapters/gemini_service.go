// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/health-tracker/backend/internal/application/adapter"
)

// GeminiService implements the AdviceService using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateAdvice produces health advice text for the given weekly metrics.
func (s *GeminiService) GenerateAdvice(ctx context.Context, request adapter.AdviceRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	advice, err := s.parseResponse(resp)
	if err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return advice, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(request adapter.AdviceRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a friendly health coach. Based on the user's weekly health summary below, give short, practical advice.

RULES:
- Keep the answer under 150 words.
- Use plain language, no medical jargon.
- Cover sleep, diet, and exercise where the numbers suggest something to improve.
- Do not diagnose conditions or recommend medication.
- Answer as plain text, no markdown formatting.

WEEKLY SUMMARY:
`)

	sb.WriteString(fmt.Sprintf("- Average sleep: %.1f hours per night\n", request.AvgSleepHours))
	sb.WriteString(fmt.Sprintf("- Average calories burned by exercise: %.0f kcal per day\n", request.AvgCaloriesBurned))
	sb.WriteString(fmt.Sprintf("- Average calorie intake: %.0f kcal per day\n", request.AvgCaloriesEaten))
	if request.BMI > 0 {
		sb.WriteString(fmt.Sprintf("- BMI: %.2f\n", request.BMI))
	} else {
		sb.WriteString("- BMI: unknown\n")
	}

	return sb.String()
}

// parseResponse extracts the advice text from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent += string(text)
		}
	}

	textContent = strings.TrimSpace(textContent)
	if textContent == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return textContent, nil
}

// Ensure GeminiService implements adapter.AdviceService.
var _ adapter.AdviceService = (*GeminiService)(nil)
