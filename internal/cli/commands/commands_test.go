package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewCompareCommand(t *testing.T) {
	cmd := NewCompareCommand()

	if cmd.Use != "compare <expected-trace> <actual-trace>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	// Check flags exist
	flags := []string{"profile", "output", "anchor", "fields", "strict", "fail-on-diff", "color", "verbose"}
	for _, flag := range flags {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("Missing flag: %s", flag)
		}
	}
}

func TestNewValidateCommand(t *testing.T) {
	cmd := NewValidateCommand()

	if cmd.Use != "validate <profile-file>" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}

	if !strings.Contains(cmd.Long, "Validate") {
		t.Error("Missing description in Long")
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()

	if cmd.Use != "version" {
		t.Errorf("Unexpected Use: %s", cmd.Use)
	}
}

func TestRunValidate_Success(t *testing.T) {
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, "profile.yaml")

	profile := `anchor: "PC:"
fields: 5
strict: true
`
	if err := os.WriteFile(profilePath, []byte(profile), 0644); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{profilePath})

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Profile valid!", `Anchor: "PC:"`, "Fields: 5", "Strict: true"} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
}

func TestRunValidate_InvalidProfile(t *testing.T) {
	tmpDir := t.TempDir()
	profilePath := filepath.Join(tmpDir, "invalid.yaml")

	if err := os.WriteFile(profilePath, []byte("fields: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}

	cmd := NewValidateCommand()
	cmd.SetArgs([]string{profilePath})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for invalid profile")
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	cmd := NewValidateCommand()
	cmd.SetArgs([]string{"/nonexistent/profile.yaml"})
	cmd.SetOut(&bytes.Buffer{})

	if err := cmd.ExecuteContext(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestVersionCommand_Output(t *testing.T) {
	cmd := NewVersionCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if buf.String() != "tracediff dev\n" {
		t.Errorf("version output = %q", buf.String())
	}
}
