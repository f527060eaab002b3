// Package integration provides CLI integration tests for prism.
// Implements: prd006-prism-cli R7 (binary-level validation).
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// prismBin is the path to the built prism binary.
	prismBin string
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
	// Start from the current working directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetPrismBin sets the path to the prism binary (called from TestMain).
func SetPrismBin(path string) {
	prismBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config and
// hosts directory. The config.yaml written here points hosts_dir at the
// environment's hosts directory, so host files are resolved through the
// configuration rather than a flag.
type TestEnv struct {
	t        *testing.T
	TempDir  string
	Config   string
	HostsDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build prism: %v", buildErr)
	}
	if prismBin == "" {
		t.Fatal("prism binary not built (prismBin is empty)")
	}

	tempDir := t.TempDir()
	hostsDir := filepath.Join(tempDir, "hosts")
	configDir := filepath.Join(tempDir, "config")

	for _, dir := range []string{configDir, hostsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	configContent := "hosts_dir: " + hostsDir + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:        t,
		TempDir:  tempDir,
		Config:   configDir,
		HostsDir: hostsDir,
	}
}

// WriteConfig replaces the environment's config.yaml with the given content.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.Config, "config.yaml"), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// WriteHostFile writes a host descriptor file into the hosts directory
// and returns its bare name for use as a command argument.
func (e *TestEnv) WriteHostFile(name, content string) string {
	e.t.Helper()
	if err := os.WriteFile(filepath.Join(e.HostsDir, name), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write host file: %v", err)
	}
	return name
}

// CmdResult holds the result of a prism command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunPrism executes the prism CLI with the given arguments.
// Returns stdout, stderr, and exit code.
func (e *TestEnv) RunPrism(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(prismBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run prism: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunPrism executes the prism CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunPrism(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunPrism(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("prism %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}
