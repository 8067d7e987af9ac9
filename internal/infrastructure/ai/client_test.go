package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func TestClientCompleteSendsPromptAndParsesChoices(t *testing.T) {
	var gotBody completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"text":"celebrate.py"}]}`))
	}))
	defer server.Close()

	client := NewClient(domain.ModelSettings{Endpoint: server.URL, ModelID: "tinyllama"})
	got, err := client.Complete(context.Background(), "pick a file", 16)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "celebrate.py" {
		t.Fatalf("Complete() = %q", got)
	}
	if gotBody.Prompt != "pick a file" || gotBody.Model != "tinyllama" || gotBody.MaxTokens != 16 {
		t.Fatalf("request body = %+v", gotBody)
	}
}

func TestClientCompleteServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(domain.ModelSettings{Endpoint: server.URL})
	_, err := client.Complete(context.Background(), "pick a file", 16)
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("Complete() error = %v, want ErrBackendUnavailable", err)
	}
}

func TestNewClientWithoutEndpointIsNil(t *testing.T) {
	if client := NewClient(domain.ModelSettings{}); client != nil {
		t.Fatalf("NewClient() = %+v, want nil", client)
	}
}
