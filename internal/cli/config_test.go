// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
)

func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadConfig(t *testing.T) {
	dir := withConfigHome(t)
	path := filepath.Join(dir, ConfigPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("--pen-width 4\n  --log-level=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if diff := cmp.Diff([]string{"--pen-width", "4", "--log-level=debug"}, got); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	withConfigHome(t)

	got, err := LoadConfig()
	if err != nil || got != nil {
		t.Errorf("LoadConfig = %v, %v; want nil, nil", got, err)
	}
}
