// Package testutil provides common test utilities for the bookexplorer project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnv provides a sandboxed test environment that validates all paths
// stay within a temporary directory. It automatically cleans up when the
// test completes.
type TestEnv struct {
	t       *testing.T
	rootDir string
}

// NewTestEnv creates a new sandboxed test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{
		t:       t,
		rootDir: t.TempDir(),
	}
}

// RootDir returns the root directory of the test environment.
func (e *TestEnv) RootDir() string {
	return e.rootDir
}

// Path returns an absolute path within the test environment.
// It fails the test if the path escapes the sandbox.
func (e *TestEnv) Path(elem ...string) string {
	e.t.Helper()

	cleanPath := filepath.Clean(filepath.Join(append([]string{e.rootDir}, elem...)...))
	if !e.isWithinSandbox(cleanPath) {
		e.t.Fatalf("path %q escapes test sandbox %q", cleanPath, e.rootDir)
	}
	return cleanPath
}

func (e *TestEnv) isWithinSandbox(path string) bool {
	rel, err := filepath.Rel(filepath.Clean(e.rootDir), path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// WriteFile writes content to a file in the environment, creating parents.
func (e *TestEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := e.Path(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// ReadFile returns the content of a file in the environment.
func (e *TestEnv) ReadFile(name string) string {
	e.t.Helper()

	data, err := os.ReadFile(e.Path(name))
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// FileExists reports whether a file exists in the environment.
func (e *TestEnv) FileExists(name string) bool {
	e.t.Helper()

	_, err := os.Stat(e.Path(name))
	return err == nil
}

// Chdir switches the working directory to the environment root for the
// rest of the test.
func (e *TestEnv) Chdir() {
	e.t.Helper()
	e.t.Chdir(e.rootDir)
}
