package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_LocalSource(t *testing.T) {
	mirror := t.TempDir()
	if err := os.WriteFile(filepath.Join(mirror, "blocks.json"), []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "scheme")

	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-o", out, "-version", "1.19.4", "-source", mirror}, &stderr)
	if err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	if _, err := os.Stat(filepath.Join(out, "pc", "1.19.4", "blocks.json")); err != nil {
		t.Errorf("expected fetched file: %v", err)
	}
	if !strings.Contains(stderr.String(), "done downloading schemes") {
		t.Errorf("expected completion log, got %q", stderr.String())
	}
}

func TestRun_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no version", args: []string{"-version", ""}, wantErr: "version is required"},
		{name: "no output", args: []string{"-o", ""}, wantErr: "output dir is required"},
		{name: "no platform", args: []string{"-platform", ""}, wantErr: "platform required"},
		{name: "unknown flag", args: []string{"-bogus"}, wantErr: "flag provided but not defined"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			err := run(context.Background(), tc.args, &stderr)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
