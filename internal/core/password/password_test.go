package password

import (
	"strings"
	"testing"
)

func TestHashAndMatches(t *testing.T) {
	hash, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "secret123" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !Matches("secret123", hash) {
		t.Fatalf("expected plaintext to match its own hash")
	}
	if Matches("wrong-password", hash) {
		t.Fatalf("wrong password must not match")
	}
}

func TestHashIsSalted(t *testing.T) {
	h1, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	h2, err := Hash("secret123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
	if !Matches("secret123", h1) || !Matches("secret123", h2) {
		t.Fatalf("both salted hashes must still match the plaintext")
	}
}

func TestMatchesMalformedHash(t *testing.T) {
	for _, bad := range []string{"", "not-a-bcrypt-hash", strings.Repeat("x", 60)} {
		if Matches("secret123", bad) {
			t.Fatalf("malformed hash %q must not match", bad)
		}
	}
}
