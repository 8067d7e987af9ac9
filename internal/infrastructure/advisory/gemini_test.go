package advisory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/pkg/logger"
)

func TestParseVerdictPrecedence(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"SAFE", true},
		{"UNSAFE", false},
		{"unsafe, this could damage the device", false},
		// Negative token outranks the positive substring it contains.
		{"this is not safe, definitely UNSAFE", false},
		{"yes, that should work", true},
		{"ok", true},
		{"feasible with care", true},
		{"doable", true},
		{"absolutely not", false},
		{"", false},
		{"   ", false},
	}
	for _, tc := range cases {
		if got := ParseVerdict(tc.text); got != tc.want {
			t.Fatalf("ParseVerdict(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestClassifyWithoutCredentialFailsClosed(t *testing.T) {
	t.Setenv("SHIBU_TEST_ADVISORY_KEY", "")
	classifier := NewGemini(domain.AdvisorySettings{APIKeyEnvVar: "SHIBU_TEST_ADVISORY_KEY"}, logger.NewStd(false))

	verdict := classifier.Classify(context.Background(), "juggle knives")
	if verdict.Safe {
		t.Fatal("missing credential must never be read as permission")
	}
}

func TestClassifyExtractsGeminiResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("key query param = %q", r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"SAFE"}]}}]}`))
	}))
	defer server.Close()

	t.Setenv("SHIBU_TEST_ADVISORY_KEY", "test-key")
	classifier := NewGemini(domain.AdvisorySettings{
		Endpoint:     server.URL,
		APIKeyEnvVar: "SHIBU_TEST_ADVISORY_KEY",
	}, logger.NewStd(false))

	verdict := classifier.Classify(context.Background(), "wave hello")
	if !verdict.Safe {
		t.Fatalf("Classify() = %+v, want safe", verdict)
	}
	if verdict.RawText != "SAFE" {
		t.Fatalf("RawText = %q", verdict.RawText)
	}
}

func TestClassifyMissingResponseKeysFailsClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{}]}`))
	}))
	defer server.Close()

	t.Setenv("SHIBU_TEST_ADVISORY_KEY", "test-key")
	classifier := NewGemini(domain.AdvisorySettings{
		Endpoint:     server.URL,
		APIKeyEnvVar: "SHIBU_TEST_ADVISORY_KEY",
	}, logger.NewStd(false))

	if verdict := classifier.Classify(context.Background(), "wave hello"); verdict.Safe {
		t.Fatalf("Classify() = %+v, want unsafe on missing keys", verdict)
	}
}

func TestClassifyTransportErrorFailsClosed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota", http.StatusTooManyRequests)
	}))
	defer server.Close()

	t.Setenv("SHIBU_TEST_ADVISORY_KEY", "test-key")
	classifier := NewGemini(domain.AdvisorySettings{
		Endpoint:     server.URL,
		APIKeyEnvVar: "SHIBU_TEST_ADVISORY_KEY",
	}, logger.NewStd(false))

	if verdict := classifier.Classify(context.Background(), "wave hello"); verdict.Safe {
		t.Fatalf("Classify() = %+v, want unsafe on transport error", verdict)
	}
}
