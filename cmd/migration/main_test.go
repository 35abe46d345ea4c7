package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got=%d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got=%d err=%v", got, err)
	}
	if _, err := parseSteps([]string{"0"}); err == nil {
		t.Fatalf("expected error for zero steps")
	}
	if _, err := parseSteps([]string{"x"}); err == nil {
		t.Fatalf("expected error for non-numeric steps")
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if got, err := parseVersion("1760486400"); err != nil || got != 1760486400 {
		t.Fatalf("unexpected version: got=%d err=%v", got, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if got, err := parseTarget("7"); err != nil || got != 7 {
		t.Fatalf("unexpected target: got=%d err=%v", got, err)
	}
	if _, err := parseTarget("-7"); err == nil {
		t.Fatalf("expected error for negative target")
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}

	missing := filepath.Join(dir, "missing")
	wd, _ := os.Getwd()
	if _, err := os.Stat(filepath.Join(wd, "db", "migrations")); err == nil {
		t.Skip("working directory has db/migrations")
	}
	if _, err := resolveMigrationsDir(missing); err == nil && !dirExists("/app/db/migrations") {
		t.Fatalf("expected error for missing directory")
	}
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
