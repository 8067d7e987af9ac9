package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func writeScript(t *testing.T, name, body string) domain.RegistryEntry {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return domain.RegistryEntry{Name: name, Path: path, IsExecutable: true}
}

func TestKindFor(t *testing.T) {
	cases := []struct {
		name string
		want domain.ArtifactKind
	}{
		{"celebrate.py", domain.ArtifactPython},
		{"move_forward.sh", domain.ArtifactShell},
		{"wave.bash", domain.ArtifactShell},
		{"blink", domain.ArtifactBinary},
		{"photo.PY", domain.ArtifactPython},
	}
	for _, tc := range cases {
		if got := KindFor(domain.RegistryEntry{Name: tc.name}); got != tc.want {
			t.Fatalf("KindFor(%s) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestExecuteShellScriptCapturesOutput(t *testing.T) {
	entry := writeScript(t, "hello.sh", "#!/bin/sh\necho woof\n")
	e := NewLocalExecutor(domain.RegistrySettings{}, domain.ExecutionSettings{})

	result, err := e.Execute(context.Background(), entry)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.Ran {
		t.Fatalf("Execute() = %+v, want ran", result)
	}
	if result.Stdout != "woof\n" {
		t.Fatalf("stdout = %q", result.Stdout)
	}
	if result.ExitCode != 0 {
		t.Fatalf("exit code = %d", result.ExitCode)
	}
}

func TestExecuteNonZeroExitReportedNotEscalated(t *testing.T) {
	entry := writeScript(t, "fail.sh", "#!/bin/sh\nexit 3\n")
	e := NewLocalExecutor(domain.RegistrySettings{}, domain.ExecutionSettings{})

	result, err := e.Execute(context.Background(), entry)
	if err != nil {
		t.Fatalf("Execute() error = %v, non-zero exit must not escalate", err)
	}
	if result.Ran {
		t.Fatal("result.Ran should be false for non-zero exit")
	}
	if result.ExitCode != 3 {
		t.Fatalf("exit code = %d, want 3", result.ExitCode)
	}
	if result.Err == nil {
		t.Fatal("result.Err should carry the exit error")
	}
}

func TestExecuteNonExecutableBinaryRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	entry := domain.RegistryEntry{Name: "blob", Path: path, IsExecutable: false}
	e := NewLocalExecutor(domain.RegistrySettings{}, domain.ExecutionSettings{})

	result, err := e.Execute(context.Background(), entry)
	if err == nil {
		t.Fatalf("Execute() = %+v, want launch error", result)
	}
	if result.Ran {
		t.Fatal("result.Ran should be false")
	}
}

func TestExecuteTimeoutKillsProcess(t *testing.T) {
	entry := writeScript(t, "sleepy.sh", "#!/bin/sh\nsleep 5\n")
	e := NewLocalExecutor(domain.RegistrySettings{}, domain.ExecutionSettings{TimeoutSeconds: 1})

	result, err := e.Execute(context.Background(), entry)
	if err == nil && result.Ran {
		t.Fatalf("Execute() = %+v, want timeout failure", result)
	}
}
