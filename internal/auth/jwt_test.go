package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	verifier := NewHMACVerifier("shared-secret", "screener")
	token := signToken(t, "shared-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "screener",
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email: "dana@example.com",
	})

	claims, err := verifier.Verify(token)
	if err != nil {
		t.Fatalf("expected token to verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Email != "dana@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier := NewHMACVerifier("shared-secret", "")
	token := signToken(t, "some-other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected rejection for a token signed with another secret")
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	verifier := NewHMACVerifier("shared-secret", "screener")
	token := signToken(t, "shared-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected rejection for a foreign issuer")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier := NewHMACVerifier("shared-secret", "")
	token := signToken(t, "shared-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("expected rejection for an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewHMACVerifier("shared-secret", "")
	if _, err := verifier.Verify("not.a.token"); err == nil {
		t.Fatal("expected rejection for a malformed token")
	}
}
