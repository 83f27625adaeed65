package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiExtractor implements SlotExtractor using Google's Gemini models.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExtractor initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiExtractor(ctx context.Context, apiKey string) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Extraction should be deterministic-ish, not creative.
	model.SetTemperature(0.2)

	return &GeminiExtractor{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (e *GeminiExtractor) Close() {
	e.client.Close()
}

// ExtractSlots asks the model for the trip slots present in one message.
func (e *GeminiExtractor) ExtractSlots(ctx context.Context, userMessage string, known map[string]string) (*ExtractionResult, error) {
	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", buildSystemPrompt(known), userMessage)

	resp, err := e.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Strip markdown fences in case JSON mode leaks them anyway.
	cleanJSON := cleanJSONString(responseText.String())

	var result ExtractionResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}

	return &result, nil
}

// buildSystemPrompt constructs the instructions for the model.
func buildSystemPrompt(known map[string]string) string {
	var b strings.Builder
	b.WriteString(`You extract travel planning slots from a single user message written in Korean or English.

Return ONLY a JSON object with these optional keys:
- "destination": canonical English city name (e.g. "Osaka", "Tokyo", "Bangkok")
- "duration": integer number of nights (a day count N means N-1 nights, minimum 1)
- "budget": integer per-person budget in Korean won (e.g. "100만원" is 1000000)
- "num_people": integer party size
- "travel_style": array from ["sightseeing","food","shopping","relaxation","activity","culture","nature","history"]

Omit any key the message does not mention. Never guess.
`)

	if len(known) > 0 {
		b.WriteString("\nAlready collected (do not re-extract these):\n")
		for _, field := range []string{"destination", "duration", "budget", "num_people", "travel_style"} {
			if v, ok := known[field]; ok && v != "" && v != "0" {
				fmt.Fprintf(&b, "- %s: %s\n", field, v)
			}
		}
	}
	return b.String()
}

// cleanJSONString trims ```json fences and surrounding whitespace.
func cleanJSONString(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
