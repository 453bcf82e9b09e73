package util

import (
	"strings"
	"testing"
)

func TestHashUserKeyIsStableHex(t *testing.T) {
	id := "3f2b8c1e-9d4a-4e6b-a7c2-5b1f0e8d9a34"
	got := HashUserKey(id)
	if got != HashUserKey(id) {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	if strings.Trim(got, "0123456789abcdef") != "" {
		t.Fatalf("hash contains non-hex characters: %s", got)
	}
	if HashUserKey("7a0c4d2e-1b3f-4c5d-8e9f-0a1b2c3d4e5f") == got {
		t.Fatalf("distinct user ids must not share a namespace")
	}
}

func TestSanitizeFileName(t *testing.T) {
	got, err := SanitizeFileName(" reports/resume.pdf ")
	if err != nil {
		t.Fatalf("SanitizeFileName: %v", err)
	}
	if got != "reports_resume.pdf" {
		t.Fatalf("unexpected name %q", got)
	}
	for _, bad := range []string{"", "  ", "../resume.pdf"} {
		if _, err := SanitizeFileName(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
