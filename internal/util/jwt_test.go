package util

import (
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := "test-secret"
	token, err := GenerateToken(secret, 42, "sess-1", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.SessionID != "sess-1" {
		t.Errorf("SessionID = %q, want sess-1", claims.SessionID)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret-a", 1, "s", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}
	if _, err := ParseToken("secret-b", token); err == nil {
		t.Error("ParseToken with wrong secret error = nil, want error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	// TTL <= 0 falls back to the 24h default, so craft a short TTL and wait
	token, err := GenerateToken("secret", 1, "s", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken error = %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := ParseToken("secret", token); err == nil {
		t.Error("ParseToken of expired token error = nil, want error")
	}
}
