package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFillsDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(path, []byte("sizes: [10, 20]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Sizes) != 2 || p.Sizes[0] != 10 || p.Sizes[1] != 20 {
		t.Errorf("Sizes not decoded: %v", p.Sizes)
	}
	if len(p.Distributions) != 6 {
		t.Errorf("expected default distributions to fill in, got %v", p.Distributions)
	}
	if p.LoadFactor != 0.75 {
		t.Errorf("expected default load factor 0.75, got %v", p.LoadFactor)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultProfileCoversAllDistributions(t *testing.T) {
	p := DefaultProfile()
	if len(p.Distributions) != 6 {
		t.Errorf("expected 6 distributions, got %d", len(p.Distributions))
	}
}
