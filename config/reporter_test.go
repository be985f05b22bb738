package config

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestReport_Finalize(t *testing.T) {
	tmpDir := t.TempDir()

	stored := filepath.Join(tmpDir, "result.css")
	if err := os.WriteFile(stored, []byte("p {\n  margin: 0;\n}\n"), 0644); err != nil {
		t.Fatalf("failed to write stored file: %v", err)
	}

	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.StoreData("recipe/site.yaml", []byte("rules: []\n"))
	r.Store("result/result.css", stored)
	r.Store("missing/gone.css", filepath.Join(tmpDir, "does-not-exist.css"))

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.OpenReader(conf.Destination)
	if err != nil {
		t.Fatalf("report archive is not readable: %v", err)
	}
	defer zr.Close()

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}

	for _, want := range []string{"MANIFEST", "recipe/site.yaml", "result/result.css"} {
		if !names[want] {
			t.Errorf("report archive is missing %q, has %v", want, names)
		}
	}
	// absent files are listed in manifest but not archived
	if names["missing/gone.css"] {
		t.Error("report archive contains entry for a missing file")
	}
}

func TestReport_CollidingNamesAreVersioned(t *testing.T) {
	tmpDir := t.TempDir()

	conf := ReporterConfig{Destination: filepath.Join(tmpDir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	r.StoreData("recipe/site.yaml", []byte("a"))
	r.StoreData("recipe/site.yaml", []byte("b"))

	if len(r.entries) != 2 {
		t.Errorf("expected colliding names to be versioned, have %d entries", len(r.entries))
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestReport_Nil(t *testing.T) {
	var r *Report

	// all operations must be no-ops on a nil report
	r.Store("name", "path")
	r.StoreData("name", []byte("data"))
	if n := r.Name(); n != "" {
		t.Errorf("Name() on nil report = %q, want empty", n)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() on nil report error = %v", err)
	}
}
