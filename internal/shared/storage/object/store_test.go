package object

import (
	"strings"
	"testing"
)

func TestUserKeyNamespacesByHashedUser(t *testing.T) {
	key, err := UserKey("user-1", "resume.pdf")
	if err != nil {
		t.Fatalf("UserKey: %v", err)
	}
	parts := strings.Split(key, "/")
	if len(parts) != 2 || len(parts[0]) != 64 || parts[1] != "resume.pdf" {
		t.Fatalf("unexpected key %q", key)
	}
	if strings.Contains(key, "user-1") {
		t.Fatalf("raw user id leaked into key %q", key)
	}
}

func TestUserKeyRejectsTraversal(t *testing.T) {
	if _, err := UserKey("user-1", "../etc/passwd"); err == nil {
		t.Fatalf("expected error for traversal name")
	}
}
