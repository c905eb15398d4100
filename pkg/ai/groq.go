package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	groqDefaultBaseURL = "https://api.groq.com/openai/v1"
	groqDefaultModel   = "llama-3.3-70b-versatile"
)

const analysisSystemPrompt = `You are a medical document analyst. You receive the extracted text of a ` +
	`patient's medical document and respond with a JSON object containing exactly these fields: ` +
	`"risk_level" (one of "low", "medium", "high"), "summary" (2-3 sentences in plain language), ` +
	`"health_score" (integer 0-100, higher is healthier), and "recommendations" (array of short strings). ` +
	`Respond with the JSON object only.`

// GroqConfig configures the Groq chat-completions client.
type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// GroqProvider analyzes documents via the Groq OpenAI-compatible API.
type GroqProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewGroqProvider(cfg GroqConfig) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = groqDefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = groqDefaultModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	return &GroqProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Analyze sends the document text to the model and parses its structured answer.
func (p *GroqProvider) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if text == "" {
		return nil, ErrEmptyDocument
	}

	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: analysisSystemPrompt},
			{Role: "user", Content: text},
		},
		Temperature: 0.2,
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal analysis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderFailure, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("decode analysis response: %w", err)
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrProviderFailure, chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices", ErrMalformedAnswer)
	}

	return parseAnalysisContent(chatResp.Choices[0].Message.Content)
}

// parseAnalysisContent decodes the model's JSON answer into an Analysis.
// An unrecognized risk string falls back to medium rather than discarding
// the whole analysis.
func parseAnalysisContent(content string) (*Analysis, error) {
	var raw struct {
		RiskLevel       string   `json:"risk_level"`
		Summary         string   `json:"summary"`
		HealthScore     int      `json:"health_score"`
		Recommendations []string `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedAnswer, err)
	}

	risk, err := ParseRisk(raw.RiskLevel)
	if err != nil {
		risk = RiskMedium
	}

	score := raw.HealthScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &Analysis{
		RiskLevel:       risk,
		Summary:         raw.Summary,
		HealthScore:     score,
		Recommendations: raw.Recommendations,
	}, nil
}
