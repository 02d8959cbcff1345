package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestVersionCmd tests the version command.
func TestVersionCmd(t *testing.T) {
	t.Parallel()

	t.Run("prints version information", func(t *testing.T) {
		t.Parallel()

		cmd := NewRootCmd()
		var buf bytes.Buffer
		cmd.SetOut(&buf)
		cmd.SetErr(&buf)
		cmd.SetArgs([]string{"version"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "jsonld version") {
			t.Errorf("expected version line, got:\n%s", output)
		}
		if !strings.Contains(output, "commit:") {
			t.Errorf("expected commit line, got:\n%s", output)
		}
		if !strings.Contains(output, "built:") {
			t.Errorf("expected build date line, got:\n%s", output)
		}
	})
}

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	t.Parallel()

	if got := getVersion(); got == "" {
		t.Error("expected non-empty version")
	}
	if got := getCommit(); got == "" {
		t.Error("expected non-empty commit")
	}
	if got := getDate(); got == "" {
		t.Error("expected non-empty date")
	}
}
