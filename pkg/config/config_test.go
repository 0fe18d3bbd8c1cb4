package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/tracediff/pkg/differ"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Anchor != "A" {
		t.Errorf("Anchor = %q, want %q", cfg.Anchor, "A")
	}
	if cfg.Fields != 7 {
		t.Errorf("Fields = %d, want 7", cfg.Fields)
	}
	if cfg.Strict {
		t.Error("Strict should default to false")
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(DefaultConfig()) error = %v", err)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
anchor: "PC:"
fields: 4
strict: true
output: json
color: never
`
	path := writeTempFile(t, "profile.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Anchor != "PC:" {
		t.Errorf("Anchor = %q, want %q", cfg.Anchor, "PC:")
	}
	if cfg.Fields != 4 {
		t.Errorf("Fields = %d, want 4", cfg.Fields)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputJSON)
	}
	if cfg.Color != ColorNever {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorNever)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeTempFile(t, "profile.yaml", "strict: true\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Anchor != DefaultAnchor {
		t.Errorf("Anchor = %q, want default %q", cfg.Anchor, DefaultAnchor)
	}
	if cfg.Fields != DefaultFields {
		t.Errorf("Fields = %d, want default %d", cfg.Fields, DefaultFields)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default %q", cfg.Output, DefaultOutput)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(context.Background(), "/nonexistent/profile.yaml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	content := `invalid: yaml: content: [`
	path := writeTempFile(t, "invalid.yaml", content)
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"empty anchor", `anchor: ""`, "anchor"},
		{"zero fields", `fields: 0`, "fields"},
		{"negative fields", `fields: -3`, "fields"},
		{"unknown output", `output: xml`, "output"},
		{"unknown color", `color: sometimes`, "color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "profile.yaml", tt.content)
			_, err := Load(context.Background(), path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvAnchor, "PC:")
	t.Setenv(EnvFields, "3")

	path := writeTempFile(t, "profile.yaml", "anchor: A\nfields: 7\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Anchor != "PC:" {
		t.Errorf("Anchor = %q, want env override %q", cfg.Anchor, "PC:")
	}
	if cfg.Fields != 3 {
		t.Errorf("Fields = %d, want env override 3", cfg.Fields)
	}
}

func TestLoad_InvalidEnvironmentFields(t *testing.T) {
	t.Setenv(EnvFields, "seven")

	path := writeTempFile(t, "profile.yaml", "fields: 7\n")
	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("Load() expected error for non-numeric TRACEDIFF_FIELDS")
	}
	if !strings.Contains(err.Error(), EnvFields) {
		t.Errorf("error = %v, want mention of %s", err, EnvFields)
	}
}

func TestValidate_FillsEmptyOptionalValues(t *testing.T) {
	cfg := &Config{Anchor: "A", Fields: 7}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Output != OutputText {
		t.Errorf("Output = %q, want %q", cfg.Output, OutputText)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want %q", cfg.Color, ColorAuto)
	}
}

func TestDifferOptions(t *testing.T) {
	cfg := &Config{Anchor: "A", Fields: 2, Strict: true}

	expected := "A\nA 1 X\n"
	actual := "A\nA 1 Y\nA 2 2\n"

	dir := t.TempDir()
	expPath := filepath.Join(dir, "expected.log")
	actPath := filepath.Join(dir, "actual.log")
	if err := os.WriteFile(expPath, []byte(expected), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(actPath, []byte(actual), 0644); err != nil {
		t.Fatal(err)
	}

	// Only two fields are compared, so the records agree and strict mode
	// reports the unpaired trailing record.
	_, err := differ.CompareFiles(context.Background(), expPath, actPath, cfg.DifferOptions()...)
	if err == nil {
		t.Fatal("CompareFiles() expected length mismatch error")
	}
	if !strings.Contains(err.Error(), "length mismatch") {
		t.Errorf("error = %v, want length mismatch", err)
	}
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
