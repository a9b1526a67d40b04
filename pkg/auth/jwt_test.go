package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "test-secret-key"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("firebase-uid-123", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	claims, err := ValidateSessionToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateSessionToken failed: %v", err)
	}

	if claims.UID != "firebase-uid-123" {
		t.Errorf("Expected uid 'firebase-uid-123', got '%s'", claims.UID)
	}
	if claims.Subject != "firebase-uid-123" {
		t.Errorf("Expected subject 'firebase-uid-123', got '%s'", claims.Subject)
	}
}

func TestSessionTokenTampered(t *testing.T) {
	token, err := GenerateSessionToken("uid", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	// Flip a character in the signature segment
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("Expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := ValidateSessionToken(tampered, testSecret); err == nil {
		t.Error("Expected tampered token to be rejected")
	}
}

func TestSessionTokenExpired(t *testing.T) {
	token, err := GenerateSessionToken("uid", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := ValidateSessionToken(token, testSecret); err == nil {
		t.Error("Expected expired token to be rejected")
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("uid", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken failed: %v", err)
	}

	if _, err := ValidateSessionToken(token, "other-secret"); err == nil {
		t.Error("Expected token signed with a different secret to be rejected")
	}
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if hash == "hunter2" {
		t.Error("Hash should not equal the plaintext password")
	}
	if !CheckPassword("hunter2", hash) {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword("hunter3", hash) {
		t.Error("CheckPassword should reject a wrong password")
	}
}
