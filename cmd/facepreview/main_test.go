//go:build !tinygo

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	today := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"", today},
		{"14:05", time.Date(2024, 6, 1, 14, 5, 0, 0, time.UTC)},
		{"2025-01-02 03:04", time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)},
		{"2025-01-02T03:04:00Z", time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := parseTime(tt.in, today)
		if err != nil || !got.Equal(tt.want) {
			t.Errorf("parseTime(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := parseTime("noon", today); err == nil {
		t.Error("expected error for unparseable time")
	}
}

func TestRenderWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "face.png")
	cmd := newCommand()
	cmd.SetArgs([]string{"--out", out, "--time", "14:05", "--battery", "50", "--shape", "round", "--env-file", "", "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 180 || b.Dy() != 180 {
		t.Fatalf("image is %v, want 180x180", b)
	}
}
