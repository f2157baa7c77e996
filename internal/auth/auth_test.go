package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TestPasswordRoundTrip verifies hashing and verification of passwords.
func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}

// TestTokenRoundTrip verifies that an issued token parses back to its claims.
func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.IssueToken(42, "alice@example.com")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("uid = %d, want 42", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
}

// TestTokenWrongSecret verifies tokens signed with a different secret are rejected.
func TestTokenWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).IssueToken(1, "a@example.com")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ParseToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

// TestTokenExpired verifies expired tokens are rejected.
func TestTokenExpired(t *testing.T) {
	claims := Claims{
		UserID: 1,
		Email:  "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	m := NewManager("test-secret", time.Hour)
	if _, err := m.ParseToken(token); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

// TestTokenGarbage verifies malformed tokens are rejected.
func TestTokenGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := m.ParseToken(tok); err != ErrInvalidToken {
			t.Errorf("ParseToken(%q) err = %v, want ErrInvalidToken", tok, err)
		}
	}
}
