package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testSchema = `
filters?: {
	rb_min?:   number & >=0 & <=1
	fwhm_min?: number & >=0
	supernova?: {
		max_history_days?: number & >0
	}
}
scan?: {
	pattern?:   string
	fail_fast?: bool
}
`

func writeFiles(t *testing.T, yaml string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "filters.yaml")
	schemaPath := filepath.Join(dir, "filters.cue")
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(schemaPath, []byte(testSchema), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath, schemaPath
}

func TestLoad_Valid(t *testing.T) {
	cfgPath, schemaPath := writeFiles(t, `
filters:
  rb_min: 0.65
  supernova:
    max_history_days: 14
scan:
  pattern: "*.avro"
  fail_fast: true
`)
	cfg, err := Load(cfgPath, schemaPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Filters.RBMin != 0.65 {
		t.Errorf("RBMin = %v, want 0.65", cfg.Filters.RBMin)
	}
	if cfg.Filters.Supernova.MaxHistoryDays != 14 {
		t.Errorf("MaxHistoryDays = %v, want 14", cfg.Filters.Supernova.MaxHistoryDays)
	}
	// fields absent from the file keep their defaults
	if cfg.Filters.FWHMMin != 0.5 {
		t.Errorf("FWHMMin = %v, want default 0.5", cfg.Filters.FWHMMin)
	}
	if !cfg.Scan.FailFast {
		t.Error("FailFast not loaded")
	}
}

func TestLoad_SchemaViolation(t *testing.T) {
	cfgPath, schemaPath := writeFiles(t, `
filters:
  rb_min: 3.5
`)
	if _, err := Load(cfgPath, schemaPath); err == nil {
		t.Fatal("Load accepted rb_min outside [0,1]")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	cfgPath, schemaPath := writeFiles(t, "filters: [not: a: mapping")
	if _, err := Load(cfgPath, schemaPath); err == nil {
		t.Fatal("Load accepted malformed YAML")
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()
	if cfg.Filters.RBMin != d.Filters.RBMin || cfg.Scan.Pattern != d.Scan.Pattern {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
	if !strings.HasSuffix(cfg.Scan.Pattern, ".avro") {
		t.Errorf("default pattern = %q", cfg.Scan.Pattern)
	}
}
