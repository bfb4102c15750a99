package analyst

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/toyoo1004/stock-scanner/internal/model"
)

// GeminiAnalyst implements Analyst using the Gemini API.
type GeminiAnalyst struct {
	client          *genai.Client
	model           string
	temperature     float32
	maxOutputTokens int32
}

// NewGeminiAnalyst initializes the genai client. The API key is mandatory;
// a missing key is a startup failure, not a per-ticker one.
func NewGeminiAnalyst(ctx context.Context, apiKey, modelName string, temperature float32, maxOutputTokens int32) (*GeminiAnalyst, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("init genai client: %w", err)
	}
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &GeminiAnalyst{
		client:          client,
		model:           modelName,
		temperature:     temperature,
		maxOutputTokens: maxOutputTokens,
	}, nil
}

func (a *GeminiAnalyst) Name() string { return "gemini:" + a.model }

// Commentary requests a short buy-signal explanation for one result.
func (a *GeminiAnalyst) Commentary(ctx context.Context, res *model.ScoreResult) (string, error) {
	prompt := buildPrompt(res)
	contents := []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(a.temperature),
	}
	if a.maxOutputTokens > 0 {
		config.MaxOutputTokens = a.maxOutputTokens
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini: empty text in response")
	}
	return text, nil
}

func buildPrompt(res *model.ScoreResult) string {
	var b strings.Builder
	b.WriteString("You are a professional equity analyst. In at most three sentences, ")
	b.WriteString(fmt.Sprintf("explain why %s was flagged as a Signal BUY today, and mention one caveat.\n", res.Ticker))
	b.WriteString(fmt.Sprintf("- Last price: $%.2f\n", res.Price))
	b.WriteString(fmt.Sprintf("- Readiness score: %.1f%%\n", res.Readiness))
	b.WriteString(fmt.Sprintf("- Volume vs 20-day average: %.1fx\n", res.VolumeRatio))
	b.WriteString(fmt.Sprintf("- OBV vs its 20-day average: %s\n", res.OBVStatus))
	b.WriteString("Ground the explanation in these technical readings only.")
	return b.String()
}
