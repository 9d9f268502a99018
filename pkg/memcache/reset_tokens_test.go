package memcache

import (
	"testing"
	"time"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "alex@example.com", time.Minute)

	if email, ok := store.Peek("tok"); !ok || email != "alex@example.com" {
		t.Fatalf("peek: %q %v", email, ok)
	}
	if email := store.Consume("tok"); email != "alex@example.com" {
		t.Fatalf("consume: %q", email)
	}
	if email := store.Consume("tok"); email != "" {
		t.Fatalf("second consume should fail, got %q", email)
	}
	if _, ok := store.Peek("tok"); ok {
		t.Fatalf("token should be gone after consume")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "alex@example.com", -time.Second)

	if _, ok := store.Peek("tok"); ok {
		t.Fatalf("expired token should not peek")
	}
	if email := store.Consume("tok"); email != "" {
		t.Fatalf("expired token should not consume, got %q", email)
	}
}

func TestUnknownToken(t *testing.T) {
	store := NewResetTokens()
	if email := store.Consume("missing"); email != "" {
		t.Fatalf("unknown token returned %q", email)
	}
}
