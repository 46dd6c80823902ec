package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the identity claims carried by a verified bearer token. Derived
// once per request, never persisted.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Verifier checks a bearer token and returns its claims or a rejection.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

type hmacVerifier struct {
	secret []byte
	issuer string
}

// NewHMACVerifier builds a Verifier over an HS256 shared secret with an
// optional expected issuer.
func NewHMACVerifier(secret, issuer string) Verifier {
	return &hmacVerifier{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Verify implements Verifier.
func (v *hmacVerifier) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return nil, fmt.Errorf("invalid token issuer")
	}

	return claims, nil
}
