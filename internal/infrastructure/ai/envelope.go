package ai

import (
	"encoding/json"
	"strings"
)

// completionEnvelope models the known response shapes of completion and chat
// endpoints. Every field is optional; absence never produces an error.
type completionEnvelope struct {
	Choices []struct {
		Text    string `json:"text"`
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	// Ollama /api/chat puts the reply here instead.
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
	// Ollama /api/generate uses a flat field.
	Response string `json:"response"`
}

// ExtractText pulls the generated text out of whatever the backend returned.
// Recognized envelopes are tried field by field; a body that is not JSON at
// all is treated as a bare string reply. An envelope with no known field
// yields the empty string, never an error.
func ExtractText(body []byte) string {
	var envelope completionEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		var bare string
		if json.Unmarshal(body, &bare) == nil {
			return strings.TrimSpace(bare)
		}
		return strings.TrimSpace(string(body))
	}

	if len(envelope.Choices) > 0 {
		if text := strings.TrimSpace(envelope.Choices[0].Text); text != "" {
			return text
		}
		if text := strings.TrimSpace(envelope.Choices[0].Message.Content); text != "" {
			return text
		}
	}
	if text := strings.TrimSpace(envelope.Message.Content); text != "" {
		return text
	}
	return strings.TrimSpace(envelope.Response)
}
