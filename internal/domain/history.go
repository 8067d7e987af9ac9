package domain

import "time"

// ResolutionRecord is one persisted resolution run.
type ResolutionRecord struct {
	RunID      string    `json:"run_id"`
	Timestamp  time.Time `json:"timestamp"`
	Utterance  string    `json:"utterance"`
	Outcome    string    `json:"outcome"`
	Tier       string    `json:"tier,omitempty"`
	Entry      string    `json:"entry,omitempty"`
	Executed   bool      `json:"executed"`
	Success    bool      `json:"success"`
	ExitCode   int       `json:"exit_code"`
	DurationMS int64     `json:"duration_ms"`
	Verdict    string    `json:"verdict,omitempty"`
}
