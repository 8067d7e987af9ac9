// Package advisory asks a remote Gemini model whether an unresolved
// utterance describes a safe, feasible request. The classifier fails closed:
// any transport, credential, or response-shape problem yields an unsafe
// verdict rather than an error.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

const (
	defaultEndpoint  = "https://generativelanguage.googleapis.com/v1beta"
	defaultModelID   = "gemini-1.5-flash-latest"
	defaultKeyEnvVar = "GEMINI_API_KEY"
	defaultTimeout   = 30 * time.Second
)

// GeminiClassifier implements the AdvisoryClassifier port against the
// generateContent REST API. The credential travels as a query parameter,
// which is how the API accepts it.
type GeminiClassifier struct {
	endpoint   string
	modelID    string
	apiKey     string
	httpClient *http.Client
	logger     ports.Logger
}

// NewGemini builds a classifier from advisory settings. The API key is read
// once at construction from the configured environment variable.
func NewGemini(settings domain.AdvisorySettings, logger ports.Logger) *GeminiClassifier {
	endpoint := settings.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	modelID := settings.ModelID
	if modelID == "" {
		modelID = defaultModelID
	}
	keyVar := settings.APIKeyEnvVar
	if keyVar == "" {
		keyVar = defaultKeyEnvVar
	}
	timeout := defaultTimeout
	if settings.TimeoutSeconds > 0 {
		timeout = time.Duration(settings.TimeoutSeconds) * time.Second
	}
	return &GeminiClassifier{
		endpoint:   endpoint,
		modelID:    modelID,
		apiKey:     os.Getenv(keyVar),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// geminiResponse is the generateContent response shape. Every level is
// optional; extraction tolerates any of them missing.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Classify implements ports.AdvisoryClassifier.
func (g *GeminiClassifier) Classify(ctx context.Context, utterance string) domain.AdvisoryVerdict {
	if g.apiKey == "" {
		// An unreachable advisory service must never be read as permission.
		return domain.AdvisoryVerdict{Safe: false}
	}

	text, err := g.ask(ctx, utterance)
	if err != nil {
		g.warn("advisory request failed", err)
		return domain.AdvisoryVerdict{Safe: false}
	}
	return domain.AdvisoryVerdict{Safe: ParseVerdict(text), RawText: text}
}

func (g *GeminiClassifier) ask(ctx context.Context, utterance string) (string, error) {
	prompt := fmt.Sprintf(
		"A small home robot was asked to: %q. It has no script for this. "+
			"Would attempting it be safe and feasible for a wheeled robot with no arms? "+
			"Answer with exactly one word: SAFE or UNSAFE.",
		utterance)

	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]interface{}{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{
			"temperature":     0.0,
			"maxOutputTokens": 16,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.endpoint, g.modelID, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, resp.Status)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, result.Error.Message)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		// Missing keys are tolerated as empty text, which parses to unsafe.
		return "", nil
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// ParseVerdict extracts a boolean verdict from free-form classifier text.
// The negative token is checked first so "this is not safe" never reads as
// safe through its substring; generic affirmatives rank below both explicit
// tokens.
func ParseVerdict(text string) bool {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return false
	}
	if strings.Contains(lowered, "unsafe") {
		return false
	}
	if strings.Contains(lowered, "safe") {
		return true
	}
	for _, token := range []string{"yes", "ok", "feasible", "doable"} {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

func (g *GeminiClassifier) warn(msg string, err error) {
	if g.logger != nil {
		g.logger.Warn(msg, map[string]interface{}{"error": err.Error()})
	}
}

var _ ports.AdvisoryClassifier = (*GeminiClassifier)(nil)
