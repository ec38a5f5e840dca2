package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.Name() != "hmac" {
		t.Fatalf("unexpected strategy name %q", strategy.Name())
	}

	token, err := strategy.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	userID, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestHMACStrategyRejectsInvalidTokens(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	cases := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%"},
		{name: "wrong part count", token: base64.StdEncoding.EncodeToString([]byte("1:2"))},
		{name: "bad signature", token: base64.StdEncoding.EncodeToString([]byte("1:2:forged"))},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := strategy.ParseToken(tt.token); err != ErrInvalidToken {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestHMACStrategyRejectsForeignSecret(t *testing.T) {
	token, err := NewHMACStrategy("one", Options{}).IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := NewHMACStrategy("two", Options{}).ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Nanosecond})
	token, err := strategy.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(time.Second + 10*time.Millisecond)
	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(0)

	hash, err := hasher.Hash("password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if err := hasher.Compare(hash, "password"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := hasher.Compare(hash, "other"); err == nil {
		t.Fatal("expected mismatch error")
	}
}
