// Package integration provides CLI integration tests for abbr. The tests
// build the binary once and drive it as a user would.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// abbrBin is the path to the built abbr binary.
	abbrBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated test environment with its own config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build abbr: %v", buildErr)
	}
	if abbrBin == "" {
		t.Fatal("abbr binary not built (abbrBin is empty)")
	}

	tempDir := t.TempDir()
	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  filepath.Join(tempDir, "config"),
		DataDir: filepath.Join(tempDir, "data"),
	}
}

// StoragePath returns the dictionary document of the environment.
func (e *TestEnv) StoragePath() string {
	return filepath.Join(e.DataDir, "storage.json")
}

// CmdResult holds the result of an abbr command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunAbbr executes the abbr CLI with the given arguments.
func (e *TestEnv) RunAbbr(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(abbrBin, allArgs...)
	cmd.Env = append(os.Environ(),
		"XDG_DOCUMENTS_DIR="+filepath.Join(e.TempDir, "docs"),
		"ABBR_LOG_LEVEL=",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run abbr: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunAbbr executes the abbr CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunAbbr(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunAbbr(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("abbr %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// ReadJSONFile reads and parses a JSON file.
func ReadJSONFile[T any](t *testing.T, path string) T {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return ParseJSON[T](t, string(data))
}

// StorageFile mirrors the persisted dictionary document.
type StorageFile struct {
	Data map[string]struct {
		Acronym string `json:"acronym"`
		Items   []struct {
			Name        string  `json:"name"`
			Description *string `json:"description"`
		} `json:"items"`
	} `json:"data"`
}

// Entry is the --json output of get.
type Entry struct {
	Acronym string `json:"acronym"`
	Items   []struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Description *string `json:"description"`
	} `json:"items"`
}
