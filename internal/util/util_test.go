package util

import (
	"testing"
	"time"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	// sha256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := SHA256Hex("abc"); got != want {
		t.Fatalf("SHA256Hex(abc) = %s, want %s", got, want)
	}
}

func TestRandomHex(t *testing.T) {
	t.Parallel()

	first, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex returned error: %v", err)
	}
	second, err := RandomHex(32)
	if err != nil {
		t.Fatalf("RandomHex returned error: %v", err)
	}

	if len(first) != 64 {
		t.Fatalf("len(RandomHex(32)) = %d, want 64", len(first))
	}
	if first == second {
		t.Fatalf("RandomHex returned the same value twice: %s", first)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
