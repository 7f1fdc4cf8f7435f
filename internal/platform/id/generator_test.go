package id

import (
	"strings"
	"testing"
)

func TestUUIDGenerator_NewID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id failed: %v", err)
	}
	second, err := gen.NewID()
	if err != nil {
		t.Fatalf("new id failed: %v", err)
	}

	if len(first) != 36 {
		t.Fatalf("expected canonical uuid length 36, got %d (%s)", len(first), first)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}

func TestRandomTokenGenerator_NewToken(t *testing.T) {
	gen := NewRandomTokenGenerator()

	token, err := gen.NewToken()
	if err != nil {
		t.Fatalf("new token failed: %v", err)
	}

	// 32 bytes base64url without padding.
	if len(token) != 43 {
		t.Fatalf("expected 43-char token, got %d (%s)", len(token), token)
	}
	if strings.ContainsAny(token, "+/=") {
		t.Fatalf("token is not URL-safe: %s", token)
	}

	other, err := gen.NewToken()
	if err != nil {
		t.Fatalf("new token failed: %v", err)
	}
	if token == other {
		t.Fatalf("expected distinct tokens, got %s twice", token)
	}
}
