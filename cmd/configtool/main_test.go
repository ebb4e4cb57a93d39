package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"turtle-feral-sim/internal/config"
)

func TestRunRoundTrip(t *testing.T) {
	src := t.TempDir()
	cfg := config.Defaults()
	cfg.Player.AttackPower = 1337
	if err := config.SaveConfig(src, cfg); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run([]string{"validate", "-config-dir", src}, &out); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out.String(), "validated successfully") {
		t.Errorf("validate output = %q", out.String())
	}

	out.Reset()
	if err := run([]string{"export", "-config-dir", src, "-name", "mine"}, &out); err != nil {
		t.Fatalf("export: %v", err)
	}
	share := strings.TrimSpace(out.String())

	dst := filepath.Join(t.TempDir(), "imported")
	out.Reset()
	if err := run([]string{"import", "-out", dst, share}, &out); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "mine (AP 1337") {
		t.Errorf("import output = %q", out.String())
	}
	got, err := config.LoadConfig(dst)
	if err != nil {
		t.Fatal(err)
	}
	if got.Player.AttackPower != 1337 {
		t.Errorf("saved AP = %v", got.Player.AttackPower)
	}
}

func TestRunErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"bogus"},
		{"import"},
		{"import", "not-a-share"},
		{"export", "-unknown-flag"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if err := run(args, &out); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}

func TestRunFields(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"fields"}, &out); err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Split(strings.TrimSpace(out.String()), "\n")); n != len(config.FieldIDs()) {
		t.Errorf("%d fields listed", n)
	}
}
