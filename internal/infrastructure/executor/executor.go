// Package executor launches resolved action artifacts as child processes.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// LocalExecutor runs artifacts directly or through the configured
// interpreter. Arguments are passed as an argv vector, never interpolated
// into a shell string, so a hostile artifact name cannot inject commands.
type LocalExecutor struct {
	python  string
	shell   string
	timeout time.Duration
}

// NewLocalExecutor builds an executor from registry and execution settings.
func NewLocalExecutor(registry domain.RegistrySettings, execution domain.ExecutionSettings) *LocalExecutor {
	python := registry.PythonInterpreter
	if python == "" {
		python = "python3"
	}
	shell := registry.ShellInterpreter
	if shell == "" {
		shell = "/bin/sh"
	}
	var timeout time.Duration
	if execution.TimeoutSeconds > 0 {
		timeout = time.Duration(execution.TimeoutSeconds) * time.Second
	}
	return &LocalExecutor{python: python, shell: shell, timeout: timeout}
}

// KindFor classifies an artifact by extension, falling back to direct
// binary execution for anything unrecognized.
func KindFor(entry domain.RegistryEntry) domain.ArtifactKind {
	switch strings.ToLower(filepath.Ext(entry.Name)) {
	case ".py":
		return domain.ArtifactPython
	case ".sh", ".bash":
		return domain.ArtifactShell
	default:
		return domain.ArtifactBinary
	}
}

// argv is the pure mapping from artifact kind to launch vector.
func (e *LocalExecutor) argv(entry domain.RegistryEntry) ([]string, error) {
	switch KindFor(entry) {
	case domain.ArtifactPython:
		return []string{e.python, entry.Path}, nil
	case domain.ArtifactShell:
		return []string{e.shell, entry.Path}, nil
	default:
		if !entry.IsExecutable {
			return nil, fmt.Errorf("artifact %s is neither a script nor executable", entry.Name)
		}
		return []string{entry.Path}, nil
	}
}

// Execute implements ports.ActionExecutor. A non-zero exit or launch failure
// is reported in the result, not escalated; the attempt is what the pipeline
// guarantees.
func (e *LocalExecutor) Execute(ctx context.Context, entry domain.RegistryEntry) (domain.ExecutionResult, error) {
	argv, err := e.argv(entry)
	if err != nil {
		return domain.ExecutionResult{Err: err}, err
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err = c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, nil
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	return result, nil
}

var _ ports.ActionExecutor = (*LocalExecutor)(nil)
